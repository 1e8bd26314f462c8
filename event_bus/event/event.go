package event

type Event interface {
	StopPropagation()
	IsPropagationStopped() bool
}

//--------------------

// Propagator is embedded into event objects to satisfy Event.
// Once stopped, propagation is never restarted by the managers.
type Propagator struct {
	propagationStopped bool
}

func (e *Propagator) StopPropagation() {
	e.propagationStopped = true
}

func (e *Propagator) IsPropagationStopped() bool {
	return e.propagationStopped
}

//--------------------

// Generic is the event object created by managers when trigger is called without one
type Generic struct {
	Propagator
}

func NewGeneric() *Generic {
	return &Generic{}
}
