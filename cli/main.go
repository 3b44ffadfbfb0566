//
// Copyright (c) 2025-2026 Astra Flight Systems Inc.
// See LICENSE file for details
//

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	configCmd "github.com/AstraFW/AstraFW/cli/functions/config"
	"github.com/AstraFW/AstraFW/cli/functions/dump"
	"github.com/AstraFW/AstraFW/cli/functions/load"
	"github.com/AstraFW/AstraFW/cli/functions/status"
	"github.com/AstraFW/AstraFW/cli/functions/validate"
	"github.com/AstraFW/AstraFW/cli/functions/version"
	"github.com/AstraFW/AstraFW/cli/global"
)

func main() {
	var err error

	// Get the name of this binary, eliminating any path information
	progName := os.Args[0]
	progName = progName[strings.LastIndex(progName, "/")+1:]

	// Environment defaults from ~/.astra-tbl, if present
	global.LoadEnv()

	// Initialize the root command
	rootCmd := &cobra.Command{
		Use:   progName,
		Short: global.Description,
		Long:  global.LongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("A subcommand is required\n")
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add the functions
	rootCmd.AddCommand(configCmd.Register())
	rootCmd.AddCommand(dump.Register())
	rootCmd.AddCommand(load.Register())
	rootCmd.AddCommand(status.Register())
	rootCmd.AddCommand(validate.Register())
	rootCmd.AddCommand(version.Register())

	// Execute the CLI
	err = rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
