package event_bus_test

import (
	"testing"

	"github.com/bassbeaver/gevent/event_bus"
	"github.com/stretchr/testify/assert"
)

func TestSubscribersRegistry(t *testing.T) {
	registry := event_bus.NewSubscribersRegistry()
	registry.Register("b", subscriberClass{})
	registry.Register("a", &emptySubscriber{})

	subscriberObj, registryError := registry.GetSubscriberByName("b")
	assert.NoError(t, registryError)
	assert.Equal(t, subscriberClass{}, subscriberObj)

	_, registryError = registry.GetSubscriberByName("c")
	assert.EqualError(t, registryError, "unknown subscriber class c")

	assert.Equal(t, []string{"a", "b"}, registry.Names())
}
