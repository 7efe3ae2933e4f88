/*
 * Copyright (C) 2023 by Jason Figge
 */

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"raycaster/internal/raycaster"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available raycasters and backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Raycasters:")
			for _, n := range raycaster.Names() {
				fmt.Fprintf(out, "  %s\n", n)
			}
			fmt.Fprintln(out, "Backends:")
			for _, n := range backendNames() {
				fmt.Fprintf(out, "  %s\n", n)
			}
			return nil
		},
	}
}
