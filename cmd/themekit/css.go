// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/themekit/internal/css"
	"github.com/thatcatcamp/themekit/internal/themes"
)

var cssCmd = &cobra.Command{
	Use:   "css [design] [preset]",
	Short: "Write the stylesheet for one combination to stdout",
	Long: `Composes the CSS for a design system and color preset. An unknown preset
falls back to the default one; an unknown design system is an error.
With --pack the pack decides both and the arguments are ignored.
--vars-only cannot be combined with --pack.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		packName, _ := flags.GetString("pack")
		minify, _ := flags.GetBool("minify")
		varsOnly, _ := flags.GetBool("vars-only")
		if err := checkCSSFlags(packName, varsOnly); err != nil {
			fail("%v", err)
		}

		opts := css.DefaultOptions()
		if varsOnly {
			opts = css.Options{}
		}

		cat := themes.Default()
		var out string
		var err error
		if packName != "" {
			out, err = css.ComposePack(cat, packName, opts)
		} else {
			design, preset := cat.Designs.DefaultName(), cat.Presets.DefaultName()
			if len(args) > 0 {
				design = args[0]
			}
			if len(args) > 1 {
				preset = args[1]
			}
			out, err = css.ComposeNamed(cat, design, preset, opts)
		}
		if err != nil {
			fail("%v", err)
		}

		if minify {
			out = css.Minify(out) + "\n"
		}
		fmt.Print(out)
	},
}

// pack stylesheets always carry the pack blocks, so there is no
// variables-only form of one
func checkCSSFlags(packName string, varsOnly bool) error {
	if packName != "" && varsOnly {
		return errors.New("--vars-only cannot be combined with --pack")
	}
	return nil
}

func init() {
	cssCmd.Flags().String("pack", "", "compose a theme pack instead")
	cssCmd.Flags().Bool("minify", false, "minify the output")
	cssCmd.Flags().Bool("vars-only", false, "only emit the custom property blocks")
	rootCmd.AddCommand(cssCmd)
}
