// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the SecondChance CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secondchance",
		Short: "SecondChance account service",
		Long: `SecondChance account service: registers user accounts,
authenticates logins, updates profiles, and issues signed session tokens.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewCertGenCmd())

	return cmd
}
