// Built on its own, lib-two has no cfg.toml, so the generated greeting is
// the declared default. Compare with example/application, which builds the
// same declaration and overrides the greeting for its own binary.
package main

import "fmt"

//go:generate go tool toml-cfg

//tomlcfg:config
type Config struct {
	Greeting string `toml:"greeting" default:"hello"`
}

func main() {
	fmt.Printf("%s, world\n", CONFIG.Greeting)
}
