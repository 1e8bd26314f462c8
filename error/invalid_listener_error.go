package error

import "fmt"

type InvalidListenerError struct {
	listenerType string
	reason       string
}

func (e *InvalidListenerError) ListenerType() string {
	return e.listenerType
}

func (e *InvalidListenerError) Error() string {
	return fmt.Sprintf("%s is not a valid event listener: %s", e.listenerType, e.reason)
}

//--------------------

func NewInvalidListenerError(listenerType, reason string) *InvalidListenerError {
	if "" == listenerType {
		listenerType = "<nil>"
	}

	return &InvalidListenerError{
		listenerType: listenerType,
		reason:       reason,
	}
}
