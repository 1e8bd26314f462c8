package gevent

import (
	"os"
	"reflect"
	"sort"

	"github.com/bassbeaver/gevent/config"
	geventError "github.com/bassbeaver/gevent/error"
	"github.com/bassbeaver/gevent/event_bus"
	"github.com/bassbeaver/gevent/event_bus/event"
	"github.com/bassbeaver/gevent/helper"
	"github.com/bassbeaver/gioc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const rootSectionPath = ""

// Kernel builds the tree of section event managers described by config files.
// Listeners are methods of services from gioc container, subscribers are taken from subscribers registry.
type Kernel struct {
	config              *viper.Viper
	container           *gioc.Container
	eventManager        *event_bus.SectionEventManager
	sectionManagers     map[string]*event_bus.SectionEventManager
	resolvers           map[string]*event_bus.SubscriberResolver
	subscribersRegistry *event_bus.SubscribersRegistry
	logger              zerolog.Logger
	booted              bool
}

func (k *Kernel) GetContainer() *gioc.Container {
	return k.container
}

func (k *Kernel) GetEventManager() *event_bus.SectionEventManager {
	return k.eventManager
}

func (k *Kernel) GetSubscribersRegistry() *event_bus.SubscribersRegistry {
	return k.subscribersRegistry
}

// GetSectionEventManager returns manager of section by its full path ("billing.refunds"), root manager for empty path.
// Returns nil if there is no such section or kernel is not booted.
func (k *Kernel) GetSectionEventManager(sectionPath string) *event_bus.SectionEventManager {
	if rootSectionPath == sectionPath {
		return k.eventManager
	}

	return k.sectionManagers[sectionPath]
}

// GetSubscriberResolver returns resolver bound to manager of section, nil if there is no such section or kernel is not booted
func (k *Kernel) GetSubscriberResolver(sectionPath string) *event_bus.SubscriberResolver {
	return k.resolvers[sectionPath]
}

// SectionPaths returns paths of booted sections, root is not included
func (k *Kernel) SectionPaths() []string {
	paths := make([]string, 0, len(k.sectionManagers))
	for sectionPath := range k.sectionManagers {
		paths = append(paths, sectionPath)
	}
	sort.Strings(paths)

	return paths
}

func (k *Kernel) SetLogger(logger zerolog.Logger) {
	k.logger = logger
}

func (k *Kernel) GetLogger() zerolog.Logger {
	return k.logger
}

func (k *Kernel) RegisterService(alias string, factoryMethod interface{}, enableCaching bool) error {
	return helper.RegisterService(
		k.config,
		k.container,
		alias,
		factoryMethod,
		enableCaching,
	)
}

func (k *Kernel) RegisterSubscriber(className string, subscriberObj interface{}) *Kernel {
	k.subscribersRegistry.Register(className, subscriberObj)

	return k
}

// Boot registers configured listeners and subscribers. Services and subscribers used in config
// have to be registered before Boot. All configuration problems found are returned in one ConfigError.
func (k *Kernel) Boot() error {
	if k.booted {
		return geventError.NewConfigError("kernel is already booted", nil)
	}

	if noCycles, cycledService := k.container.CheckCycles(); !noCycles {
		return geventError.NewConfigError("service "+cycledService+" has circular dependencies", nil)
	}

	rootConfig := &config.SectionConfig{}
	if unmarshalError := k.config.Unmarshal(rootConfig); nil != unmarshalError {
		return geventError.NewConfigError("failed to read event managers config", unmarshalError)
	}

	// listeners registered before a failure stay registered, so boot is never repeated
	k.booted = true

	if bootError := k.bootSection(rootSectionPath, k.eventManager, rootConfig); nil != bootError {
		return geventError.NewConfigError("failed to boot event managers", bootError)
	}

	k.logger.Info().Int("sections", len(k.sectionManagers)).Msg("event managers booted")

	return nil
}

func (k *Kernel) IsBooted() bool {
	return k.booted
}

// Trigger triggers eventName on root manager with new event object
func (k *Kernel) Trigger(eventName string, arguments ...interface{}) event.Event {
	return k.eventManager.Trigger(eventName, nil, arguments...)
}

func (k *Kernel) bootSection(
	sectionPath string,
	manager *event_bus.SectionEventManager,
	sectionConfig *config.SectionConfig,
) error {
	var bootErrors *multierror.Error

	if nil == sectionConfig {
		sectionConfig = &config.SectionConfig{}
	}

	manager.SetGlobalListenersEnabled(sectionConfig.GlobalListeners)

	resolver := event_bus.NewSubscriberResolver(manager)
	resolver.SetLogger(k.logger)
	resolver.SetSubscribersRegistry(k.subscribersRegistry)
	k.resolvers[sectionPath] = resolver

	for listenerIndex, listenerConfig := range sectionConfig.EventListeners {
		if listenerError := k.registerListener(manager, listenerConfig); nil != listenerError {
			bootErrors = multierror.Append(
				bootErrors,
				errors.Wrapf(listenerError, "section %q, event listener #%d", sectionPath, listenerIndex),
			)
			continue
		}

		k.logger.Debug().
			Str("section", sectionPath).
			Str("event", listenerConfig.EventName).
			Str("listener", listenerConfig.Listener).
			Int("priority", listenerConfig.Priority).
			Bool("once", listenerConfig.Once).
			Msg("event listener registered")
	}

	for _, className := range sectionConfig.Subscribers {
		if !resolver.SubscribeClass(className) {
			bootErrors = multierror.Append(
				bootErrors,
				errors.Errorf("section %q, subscriber %s is not registered or declares no event listeners", sectionPath, className),
			)
			continue
		}

		k.logger.Debug().Str("section", sectionPath).Str("subscriber", className).Msg("subscriber registered")
	}

	for _, sectionName := range sectionConfig.SectionNames() {
		childPath := sectionName
		if rootSectionPath != sectionPath {
			childPath = sectionPath + event_bus.SectionSeparator + sectionName
		}

		childManager := event_bus.NewSectionEventManager()
		manager.AddSectionEventManager(sectionName, childManager)
		k.sectionManagers[childPath] = childManager

		if sectionError := k.bootSection(childPath, childManager, sectionConfig.Sections[sectionName]); nil != sectionError {
			bootErrors = multierror.Append(bootErrors, sectionError)
		}
	}

	return bootErrors.ErrorOrNil()
}

func (k *Kernel) registerListener(manager event_bus.Dispatcher, listenerConfig config.EventListenerConfig) error {
	if validationError := listenerConfig.Validate(); nil != validationError {
		return validationError
	}

	serviceObj, serviceError := k.getService(listenerConfig.ListenerAlias())
	if nil != serviceError {
		return serviceError
	}

	methodValue := reflect.ValueOf(serviceObj).MethodByName(listenerConfig.ListenerMethod())
	if !methodValue.IsValid() {
		return errors.Errorf(
			"method %s not found in service %s",
			listenerConfig.ListenerMethod(),
			listenerConfig.ListenerAlias(),
		)
	}

	callable, adaptError := event_bus.AdaptListener(methodValue.Interface())
	if nil != adaptError {
		return errors.Wrapf(adaptError, "method %s of service %s", listenerConfig.ListenerMethod(), listenerConfig.ListenerAlias())
	}

	listenerObj := newServiceListener(listenerConfig.ListenerAlias(), listenerConfig.ListenerMethod(), callable)

	if listenerConfig.Once {
		return manager.AddOnce(listenerConfig.EventName, listenerObj, listenerConfig.Priority)
	}

	return manager.AddListener(listenerConfig.EventName, listenerObj, listenerConfig.Priority)
}

// getService converts panics of container to errors
func (k *Kernel) getService(alias string) (serviceObj interface{}, serviceError error) {
	defer func() {
		if recovered := recover(); nil != recovered {
			serviceObj = nil
			serviceError = errors.Errorf("failed to get service %s: %v", alias, recovered)
		}
	}()

	serviceObj = k.container.GetByAlias(alias)
	if nil == serviceObj {
		return nil, errors.Errorf("service %s not found", alias)
	}

	return serviceObj, nil
}

//--------------------

func NewKernel(configPath string) (*Kernel, error) {
	configObj, configError := helper.BuildConfigFromDir(configPath)
	if nil != configError {
		return nil, configError
	}

	kernel := &Kernel{
		config:              viper.New(),
		container:           gioc.NewContainer(),
		eventManager:        event_bus.NewSectionEventManager(),
		sectionManagers:     make(map[string]*event_bus.SectionEventManager),
		resolvers:           make(map[string]*event_bus.SubscriberResolver),
		subscribersRegistry: event_bus.NewSubscribersRegistry(),
		logger:              zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}

	// Copy known config parts to kernel's viper object
	func(params []string, source, target *viper.Viper) {
		for _, param := range params {
			if source.IsSet(param) {
				target.Set(param, source.Get(param))
			}
		}
	}(
		[]string{"log_level", "global_listeners", "services", "event_listeners", "subscribers", "sections"},
		configObj,
		kernel.config,
	)

	if kernel.config.IsSet("log_level") {
		logLevel, logLevelError := zerolog.ParseLevel(kernel.config.GetString("log_level"))
		if nil != logLevelError {
			return nil, errors.Wrap(logLevelError, "failed to read log_level config")
		}
		kernel.logger = kernel.logger.Level(logLevel)
	}

	// Setting parameters to container
	if configObj.IsSet("parameters") {
		parametersStringMap := configObj.GetStringMapString("parameters")
		kernel.container.SetParameters(parametersStringMap)
	}

	return kernel, nil
}
