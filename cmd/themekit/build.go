// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/themekit/internal/build"
	"github.com/thatcatcamp/themekit/internal/config"
	"github.com/thatcatcamp/themekit/internal/themes"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate static CSS for every theme combination",
	Long: `Writes one stylesheet per design system and color preset, an optional
layered bundle, optional theme pack stylesheets and a manifest.json.

Flags override the build.* configuration keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		logger, err := config.NewLogger()
		if err != nil {
			fail("%v", err)
		}
		defer logger.Sync()

		opts := build.Options{
			OutputDir:    config.GetString("build.output_dir"),
			Minify:       config.GetBool("build.minify"),
			SourceMaps:   config.GetBool("build.source_maps"),
			IncludePacks: config.GetBool("build.include_packs"),
			Bundle:       config.GetBool("build.bundle"),
		}
		flags := cmd.Flags()
		if flags.Changed("out") {
			opts.OutputDir, _ = flags.GetString("out")
		}
		if flags.Changed("minify") {
			opts.Minify, _ = flags.GetBool("minify")
		}
		if flags.Changed("source-maps") {
			opts.SourceMaps, _ = flags.GetBool("source-maps")
		}
		if flags.Changed("packs") {
			opts.IncludePacks, _ = flags.GetBool("packs")
		}
		if flags.Changed("bundle") {
			opts.Bundle, _ = flags.GetBool("bundle")
		}

		res, err := build.NewGenerator(themes.Default(), logger).Build(opts)
		if err != nil {
			fail("build failed: %v", err)
		}

		if verbose, _ := flags.GetBool("verbose"); verbose {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tSIZE")
			for _, a := range res.Files {
				fmt.Fprintf(w, "%s\t%d\n", a.Name, a.Size)
			}
			w.Flush()
		}
		fmt.Printf("Generated %d files in %s\n", len(res.Files)+1, opts.OutputDir)
	},
}

func init() {
	buildCmd.Flags().String("out", "", "output directory (build.output_dir)")
	buildCmd.Flags().Bool("minify", true, "minify stylesheets (build.minify)")
	buildCmd.Flags().Bool("source-maps", false, "write .map files (build.source_maps)")
	buildCmd.Flags().Bool("packs", false, "also write theme pack stylesheets (build.include_packs)")
	buildCmd.Flags().Bool("bundle", true, "write the layered bundle (build.bundle)")
	buildCmd.Flags().BoolP("verbose", "v", false, "list every generated file")
	rootCmd.AddCommand(buildCmd)
}
