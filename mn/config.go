package mn

// Config reserves the construction-time knobs an Engine accepts beyond its
// pattern and trait. There are none yet: NewEngineWithConfig exists so
// callers and the public mnsearch CLI have a stable extension point without
// an API break once one is needed.
type Config struct{}

// DefaultConfig returns the zero-value Config.
func DefaultConfig() Config {
	return Config{}
}
