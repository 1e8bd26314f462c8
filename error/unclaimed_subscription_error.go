package error

import "fmt"

// UnclaimedSubscriptionError describes subscription that no subscriber handler accepted.
// It is reported as a warning, subscribing continues with the next subscription.
type UnclaimedSubscriptionError struct {
	ClassName string
	Index     int
}

func (e *UnclaimedSubscriptionError) Error() string {
	return fmt.Sprintf("could not add event listeners for subscription #%d of class %s", e.Index, e.ClassName)
}

//--------------------

func NewUnclaimedSubscriptionError(className string, index int) *UnclaimedSubscriptionError {
	return &UnclaimedSubscriptionError{
		ClassName: className,
		Index:     index,
	}
}
