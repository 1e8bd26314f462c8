package event_bus_test

import (
	"testing"

	"github.com/bassbeaver/gevent/event_bus"
	"github.com/bassbeaver/gevent/event_bus/event"
	geventError "github.com/bassbeaver/gevent/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptListener(t *testing.T) {
	var received event.Event
	noArgumentsCalls := 0
	onlyEvent := func(eventObj event.Event) {
		received = eventObj
	}
	noArguments := func() {
		noArgumentsCalls++
	}

	em := event_bus.NewEventManager()
	for _, callable := range []interface{}{onlyEvent, noArguments, stopPropagation} {
		listenerObj, adaptError := event_bus.AdaptListener(callable)
		require.NoError(t, adaptError)
		require.NoError(t, em.AddListener("my.event", listenerObj, 0))
	}

	eventObj := em.Trigger("my.event", nil)
	assert.Same(t, eventObj, received)
	assert.Equal(t, 1, noArgumentsCalls)
	assert.True(t, eventObj.IsPropagationStopped())

	em.RemoveListener(noArguments)
	em.RemoveListener(onlyEvent)
	assert.Len(t, em.GetListeners("my.event"), 1)
}

func TestAdaptListenerKeepsListener(t *testing.T) {
	counter := 0
	marker := newMarker("marker", &counter)

	listenerObj, adaptError := event_bus.AdaptListener(marker)
	require.NoError(t, adaptError)
	assert.Same(t, marker, listenerObj)
}

func TestAdaptListenerRejectsInvalidCallables(t *testing.T) {
	var nilFunc func()

	for _, callable := range []interface{}{nil, nilFunc, "strlen", 42, func(a, b int) int { return a + b }} {
		_, adaptError := event_bus.AdaptListener(callable)

		var invalidListenerError *geventError.InvalidListenerError
		assert.ErrorAs(t, adaptError, &invalidListenerError)
	}

	em := event_bus.NewEventManager()
	assert.Error(t, em.AddCallable("my.event", "strlen", 0))
	assert.Empty(t, em.GetListeners("my.event"))
}
