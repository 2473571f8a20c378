// Package libtwo greets in whatever language the building application
// configures.
package libtwo

import "fmt"

//go:generate go tool toml-cfg

//tomlcfg:config
type Config struct {
	Greeting string `toml:"greeting" default:"hello"`
}

// Greet formats a greeting for name using the configured phrase.
func Greet(name string) string {
	return fmt.Sprintf("%s, %s", CONFIG.Greeting, name)
}
