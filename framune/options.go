package framune

// Config holds the session configuration.
type Config struct {
	// Logger is used for logging protocol exchanges (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for configuring the Session.
type Option func(*Config)

// WithLogger sets a logger for protocol exchanges.
//
// Example:
//
//	session := framune.New(port, framune.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
