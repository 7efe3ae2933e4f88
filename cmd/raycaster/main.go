/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"os"

	"raycaster/cmd/raycaster/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
