package error

import "fmt"

// RuntimeError is a record of a panic recovered from a listener
type RuntimeError struct {
	EventName string
	Error     interface{}
	Trace     []byte
}

func (e *RuntimeError) String() string {
	return fmt.Sprintf("listener for %q panicked: %+v", e.EventName, e.Error)
}

//--------------------

func NewRuntimeError(eventName string, errorObj interface{}, trace []byte) *RuntimeError {
	if nil == trace {
		trace = make([]byte, 0)
	}

	return &RuntimeError{
		EventName: eventName,
		Error:     errorObj,
		Trace:     trace,
	}
}
