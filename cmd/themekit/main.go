// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "themekit",
	Short: "themekit - design system and color theme toolkit",
	Long: `themekit combines design systems (typography, spacing, shape, motion)
with color presets and serves or writes the resulting CSS.

It resolves per-user theme choices over HTTP, generates static stylesheets
for every combination, and checks them against WCAG contrast rules.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fail prints an error and exits the process
func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
