// The application is the root build unit: its cfg.toml decides the final
// configuration of every library package it builds. Regenerate after
// editing cfg.toml with:
//
//	go generate ./...
package main

import (
	"fmt"

	libone "github.com/hnefatl/toml-cfg/example/application/lib-one"
	libtwo "github.com/hnefatl/toml-cfg/example/application/lib-two"
)

func main() {
	fmt.Printf("lib-one buffer: %d bytes\n", len(libone.Buffer()))
	fmt.Println(libtwo.Greet("world"))
}
