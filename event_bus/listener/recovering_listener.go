package listener

import (
	"runtime/debug"

	"github.com/bassbeaver/gevent/event_bus"
	"github.com/bassbeaver/gevent/event_bus/event"
	geventError "github.com/bassbeaver/gevent/error"
	"github.com/rs/zerolog"
)

// RecoveringListener isolates a listener: its panic is logged and reported to onPanic
// instead of aborting the dispatch. Remaining listeners are still called.
type RecoveringListener struct {
	target  event_bus.Listener
	logger  zerolog.Logger
	onPanic func(*geventError.RuntimeError)
}

func (l *RecoveringListener) OnEvent(eventName string, eventObj event.Event, manager event_bus.Dispatcher, arguments ...interface{}) {
	defer func() {
		// Recover should be called directly by a deferred function. https://golang.org/ref/spec#Handling_panics
		recoveredError := recover()
		if nil == recoveredError {
			return
		}

		runtimeError := geventError.NewRuntimeError(eventName, recoveredError, debug.Stack())
		l.logger.Error().
			Str("event", eventName).
			Interface("panic", recoveredError).
			Msg("event listener panicked")

		if nil != l.onPanic {
			l.onPanic(runtimeError)
		}
	}()

	l.target.OnEvent(eventName, eventObj, manager, arguments...)
}

func (l *RecoveringListener) WrappedListener() interface{} {
	return l.target
}

func (l *RecoveringListener) EventName() (string, bool) {
	if awareTarget, isAware := l.target.(event_bus.EventNameAware); isAware {
		return awareTarget.EventName()
	}

	return "", false
}

func (l *RecoveringListener) Priority() (int, bool) {
	if awareTarget, isAware := l.target.(event_bus.EventNameAware); isAware {
		return awareTarget.Priority()
	}

	return 0, false
}

//--------------------

// Recovering wraps target, onPanic may be nil
func Recovering(target event_bus.Listener, logger zerolog.Logger, onPanic func(*geventError.RuntimeError)) *RecoveringListener {
	return &RecoveringListener{
		target:  target,
		logger:  logger,
		onPanic: onPanic,
	}
}
