// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/themekit/internal/css"
	"github.com/thatcatcamp/themekit/internal/shadcn"
	"github.com/thatcatcamp/themekit/internal/themes"
)

var shadcnCmd = &cobra.Command{
	Use:   "shadcn",
	Short: "Convert color presets to and from shadcn theme JSON",
}

var shadcnImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Read a shadcn theme and print it as preset CSS",
	Long: `Parses a shadcn theme JSON file. Fields that are missing or malformed
fall back to the default preset and are reported on stderr.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fail("%v", err)
		}

		preset, problems := shadcn.Import(data)
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", p)
		}

		if strict, _ := cmd.Flags().GetBool("strict"); strict && len(problems) > 0 {
			fail("%d fields could not be imported", len(problems))
		}
		fmt.Print(css.PresetCSS(preset))
	},
}

var shadcnExportCmd = &cobra.Command{
	Use:   "export <preset>",
	Short: "Print a color preset as shadcn theme JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		preset, ok := themes.Default().Presets.Lookup(args[0])
		if !ok {
			fail("%v: %q", themes.ErrUnknownColorPreset, args[0])
		}

		data, err := shadcn.Export(preset)
		if err != nil {
			fail("%v", err)
		}
		fmt.Println(string(data))
	},
}

func init() {
	shadcnImportCmd.Flags().Bool("strict", false, "fail when any field falls back")
	shadcnCmd.AddCommand(shadcnImportCmd)
	shadcnCmd.AddCommand(shadcnExportCmd)
	rootCmd.AddCommand(shadcnCmd)
}
