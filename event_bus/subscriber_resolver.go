package event_bus

import (
	"os"
	"reflect"

	"github.com/bassbeaver/gevent/event_bus/collection"
	geventError "github.com/bassbeaver/gevent/error"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

type SubscriptionResult int

const (
	SubscriptionNotApplicable SubscriptionResult = iota
	SubscriptionClaimed
)

// Subscriber declares its own listeners. EventListeners must not depend on the receiver state:
// subscribers are usually passed as zero values or nil pointers of their type.
type Subscriber interface {
	EventListeners() []interface{}
}

// Subscription is the typed form of subscription understood by DefaultSubscriberHandler.
// The untyped form is []interface{}{priority, eventName, callable}.
type Subscription struct {
	Priority  int
	EventName string
	Listener  interface{}
}

// SubscriberHandler registers listeners for a subscription it understands.
// It returns SubscriptionClaimed only if the subscription was registered.
type SubscriberHandler interface {
	HandleSubscription(subscription interface{}, manager Dispatcher) SubscriptionResult
}

type SubscriberHandlerFunc func(subscription interface{}, manager Dispatcher) SubscriptionResult

func (f SubscriberHandlerFunc) HandleSubscription(subscription interface{}, manager Dispatcher) SubscriptionResult {
	return f(subscription, manager)
}

//--------------------

// SubscriberResolver offers subscriptions of subscribers to the chain of subscriber handlers,
// handlers are tried by priority (the lowest first) until one claims the subscription
type SubscriberResolver struct {
	manager  Dispatcher
	handlers *collection.PriorityCollection[SubscriberHandler]
	registry *SubscribersRegistry
	logger   zerolog.Logger
}

func (r *SubscriberResolver) AddSubscriberHandler(handler SubscriberHandler, priority int) error {
	if isNilCallable(handler) {
		return geventError.NewInvalidListenerError(typeName(handler), "subscriber handler is nil")
	}

	r.handlers.Add(priority, handler)

	return nil
}

func (r *SubscriberResolver) RemoveSubscriberHandler(handler interface{}) {
	r.handlers.RemoveFunc(func(registered SubscriberHandler) bool {
		return sameCallable(registered, handler)
	})
}

func (r *SubscriberResolver) GetSubscriberHandlers() []SubscriberHandler {
	return r.handlers.OrderedElements()
}

func (r *SubscriberResolver) SetLogger(logger zerolog.Logger) {
	r.logger = logger
}

func (r *SubscriberResolver) SetSubscribersRegistry(registry *SubscribersRegistry) {
	r.registry = registry
}

func (r *SubscriberResolver) GetSubscribersRegistry() *SubscribersRegistry {
	return r.registry
}

// Subscribe registers listeners declared by subscriberObj.
// Returns false if subscriberObj is not a Subscriber or declares no subscriptions.
// Subscriptions no handler claimed are logged as warnings and skipped.
func (r *SubscriberResolver) Subscribe(subscriberObj interface{}) bool {
	subscriber, isSubscriber := subscriberObj.(Subscriber)
	if !isSubscriber {
		return false
	}

	subscriptions := subscriber.EventListeners()
	if 0 == len(subscriptions) {
		return false
	}

	className := reflect.TypeOf(subscriberObj).String()
	for idx, subscription := range subscriptions {
		if r.handle(subscription) {
			continue
		}

		r.logger.Warn().
			Err(geventError.NewUnclaimedSubscriptionError(className, idx)).
			Str("class", className).
			Int("index", idx).
			Msg("subscription skipped")
	}

	return true
}

// SubscribeClass subscribes the subscriber registered in subscribers registry under className
func (r *SubscriberResolver) SubscribeClass(className string) bool {
	subscriberObj, registryError := r.registry.GetSubscriberByName(className)
	if nil != registryError {
		r.logger.Warn().Err(registryError).Str("class", className).Msg("subscriber class not found")

		return false
	}

	return r.Subscribe(subscriberObj)
}

func (r *SubscriberResolver) handle(subscription interface{}) bool {
	for _, handler := range r.handlers.OrderedElements() {
		if SubscriptionClaimed == handler.HandleSubscription(subscription, r.manager) {
			return true
		}
	}

	return false
}

//--------------------

// NewSubscriberResolver creates resolver registering listeners to manager, DefaultSubscriberHandler is added with priority 0
func NewSubscriberResolver(manager Dispatcher) *SubscriberResolver {
	r := &SubscriberResolver{
		manager: manager,
		handlers: collection.NewPriorityCollection[SubscriberHandler](func(a, b SubscriberHandler) bool {
			return sameCallable(a, b)
		}),
		registry: NewSubscribersRegistry(),
		logger:   zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	r.handlers.Add(0, SubscriberHandlerFunc(DefaultSubscriberHandler))

	return r
}

//--------------------

// DefaultSubscriberHandler accepts Subscription values and []interface{}{priority, eventName, callable}.
// Priority may be of any numeric type or numeric string, callable is anything AdaptListener accepts.
func DefaultSubscriberHandler(subscription interface{}, manager Dispatcher) SubscriptionResult {
	var priorityValue, eventNameValue, callable interface{}

	switch typedSubscription := subscription.(type) {
	case Subscription:
		priorityValue, eventNameValue, callable = typedSubscription.Priority, typedSubscription.EventName, typedSubscription.Listener
	case *Subscription:
		if nil == typedSubscription {
			return SubscriptionNotApplicable
		}
		priorityValue, eventNameValue, callable = typedSubscription.Priority, typedSubscription.EventName, typedSubscription.Listener
	case []interface{}:
		if len(typedSubscription) < 3 {
			return SubscriptionNotApplicable
		}
		priorityValue, eventNameValue, callable = typedSubscription[0], typedSubscription[1], typedSubscription[2]
	default:
		return SubscriptionNotApplicable
	}

	if _, isBool := priorityValue.(bool); isBool || nil == priorityValue {
		return SubscriptionNotApplicable
	}
	priority, priorityError := cast.ToIntE(priorityValue)
	if nil != priorityError {
		return SubscriptionNotApplicable
	}

	eventName, isString := eventNameValue.(string)
	if !isString {
		return SubscriptionNotApplicable
	}

	listenerObj, adaptError := AdaptListener(callable)
	if nil != adaptError {
		return SubscriptionNotApplicable
	}

	if nil != manager.AddListener(eventName, listenerObj, priority) {
		return SubscriptionNotApplicable
	}

	return SubscriptionClaimed
}
