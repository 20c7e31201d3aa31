package config

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the optional TOML config file
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	// Step 1: defaults (already done in NewConfig)

	// Step 2: optional config file
	if path := FindConfigFile(); path != "" {
		if err := l.config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	// Step 3: environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: validate the result
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}
