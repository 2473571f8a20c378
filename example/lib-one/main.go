// Built on its own, lib-one is its own root build unit. There is no
// cfg.toml in this module, so generation resolves every field to its
// declared default.
package main

import "fmt"

//go:generate go tool toml-cfg

//tomlcfg:config
type Config struct {
	BufferSize int `toml:"buffer_size" default:"32"`
}

func main() {
	fmt.Println("buffer size:", CONFIG.BufferSize)
}
