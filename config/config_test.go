package config_test

import (
	"testing"

	"github.com/bassbeaver/gevent/config"
	"github.com/stretchr/testify/assert"
)

func TestEventListenerConfig(t *testing.T) {
	listenerConfig := &config.EventListenerConfig{EventName: "user.created", Listener: "auditor:OnUserCreated"}

	assert.Equal(t, "auditor", listenerConfig.ListenerAlias())
	assert.Equal(t, "OnUserCreated", listenerConfig.ListenerMethod())
	assert.NoError(t, listenerConfig.Validate())
}

func TestEventListenerConfigValidate(t *testing.T) {
	for _, listener := range []string{"", "auditor", ":OnUserCreated", "auditor:"} {
		listenerConfig := &config.EventListenerConfig{Listener: listener}
		assert.Error(t, listenerConfig.Validate(), listener)
	}
}

func TestSectionNames(t *testing.T) {
	sectionConfig := &config.SectionConfig{
		Sections: map[string]*config.SectionConfig{
			"shipping": {},
			"billing":  {},
		},
	}

	assert.Equal(t, []string{"billing", "shipping"}, sectionConfig.SectionNames())
	assert.Empty(t, (&config.SectionConfig{}).SectionNames())
}
