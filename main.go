// Package main is the entry point for the Recicla CLI application.
// It provides terminal access to the recycling operations API: session
// management, record browsing and local reporting exports.
package main

import (
	"recicla/cli/cmd"
)

func main() {
	cmd.Execute()
}
