// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/themekit/internal/themes"
)

var listCmd = &cobra.Command{
	Use:       "list <designs|presets|packs>",
	Short:     "List registered design systems, color presets or theme packs",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"designs", "presets", "packs"},
	Run: func(cmd *cobra.Command, args []string) {
		cat := themes.Default()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer w.Flush()

		switch args[0] {
		case "designs":
			fmt.Fprintln(w, "NAME\tDISPLAY NAME\tCATEGORY\tDESCRIPTION")
			for _, d := range cat.Designs.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name, d.DisplayName, d.Category, d.Description)
			}
		case "presets":
			fmt.Fprintln(w, "NAME\tDISPLAY NAME\tPRIMARY\tDESCRIPTION")
			for _, p := range cat.Presets.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.DisplayName, p.Light.Primary.Hex(), p.Description)
			}
		case "packs":
			fmt.Fprintln(w, "NAME\tDISPLAY NAME\tDESIGN\tPRESET\tDESCRIPTION")
			for _, p := range cat.Packs.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Name, p.DisplayName, p.DesignSystem, p.ColorPreset, p.Description)
			}
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show <preset>",
	Short: "Show every color role of a preset in both modes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		preset, ok := themes.Default().Presets.Lookup(args[0])
		if !ok {
			fail("%v: %q", themes.ErrUnknownColorPreset, args[0])
		}

		fmt.Printf("%s - %s\n\n", preset.DisplayName, preset.Description)

		light := append(preset.Light.CoreRoles(), preset.Light.ExtensionRoles()...)
		dark := append(preset.Dark.CoreRoles(), preset.Dark.ExtensionRoles()...)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ROLE\tLIGHT\t\tDARK\t")
		for i, role := range light {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", role.Name,
				role.Color.String(), role.Color.Hex(),
				dark[i].Color.String(), dark[i].Color.Hex())
		}
		fmt.Fprintf(w, "radius\t%grem\t\t%grem\t\n", preset.Light.Radius, preset.Dark.Radius)
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
