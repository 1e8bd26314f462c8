package config

import "sort"

// SectionConfig describes event manager of a section, root event manager is configured with the same keys.
// Viper lowercases map keys, so section names from config files are lowercase.
type SectionConfig struct {
	GlobalListeners bool                      `mapstructure:"global_listeners"`
	EventListeners  []EventListenerConfig     `mapstructure:"event_listeners"`
	Subscribers     []string                  `mapstructure:"subscribers"`
	Sections        map[string]*SectionConfig `mapstructure:"sections"`
}

// SectionNames returns names of nested sections in stable order
func (c *SectionConfig) SectionNames() []string {
	names := make([]string, 0, len(c.Sections))
	for sectionName := range c.Sections {
		names = append(names, sectionName)
	}
	sort.Strings(names)

	return names
}
