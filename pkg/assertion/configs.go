package assertion

// Config resolves the enforcement level of span assertions.
type Config struct {
	// Available states that assertion reporting is part of this deployment.
	// It turns on descriptor checks and is a precondition for string checks.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "available" key
	//   - Environment variable SPAN_ASSERTION_AVAILABLE
	//
	// Default: false
	Available bool `yaml:"available" envconfig:"SPAN_ASSERTION_AVAILABLE"`

	// Enabled opts into string checks, which match raw names, tag keys and events
	// against the schema templates.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enabled" key
	//   - Environment variable SPAN_ASSERTION_ENABLED
	//
	// Default: false
	Enabled bool `yaml:"enabled" envconfig:"SPAN_ASSERTION_ENABLED"`
}
