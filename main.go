// Package main is the entry point for the esdump CLI.
package main

import "github.com/mouse-blink/esdump/cmd"

func main() {
	cmd.Execute()
}
