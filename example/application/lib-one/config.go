// Package libone stands in for a reusable library with a tunable buffer
// size. The application that builds it decides the final value through its
// cfg.toml; libone itself only declares the knob and a safe default.
package libone

//go:generate go tool toml-cfg

//tomlcfg:config
type Config struct {
	BufferSize int `toml:"buffer_size" default:"32"`
}

// Buffer allocates a scratch buffer of the configured size.
func Buffer() []byte {
	return make([]byte, CONFIG.BufferSize)
}
