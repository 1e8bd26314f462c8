package config

import (
	"errors"

	"github.com/bassbeaver/gevent/helper"
)

const listenerSeparator = ":"

type EventListenerConfig struct {
	EventName string `mapstructure:"Event"`
	Listener  string
	Priority  int
	Once      bool
}

func (c *EventListenerConfig) ListenerAlias() string {
	return helper.GetStringPart(c.Listener, listenerSeparator, 0)
}

func (c *EventListenerConfig) ListenerMethod() string {
	return helper.GetStringPart(c.Listener, listenerSeparator, 1)
}

func (c *EventListenerConfig) Validate() error {
	if "" == c.ListenerAlias() || "" == c.ListenerMethod() {
		return errors.New("listener " + c.Listener + " should be in format service_alias:method")
	}

	return nil
}
