// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thatcatcamp/themekit/internal/a11y"
	"github.com/thatcatcamp/themekit/internal/config"
	"github.com/thatcatcamp/themekit/internal/themes"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check theme combinations against WCAG contrast rules",
	Long: `Without --design, validates every design system against every color
preset and prints a summary. With --design, prints one detailed report.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		logger, err := config.NewLogger()
		if err != nil {
			fail("%v", err)
		}
		defer logger.Sync()

		flags := cmd.Flags()
		design, _ := flags.GetString("design")
		preset, _ := flags.GetString("preset")
		lightOnly, _ := flags.GetBool("light-only")
		asJSON, _ := flags.GetBool("json")
		failUnder, _ := flags.GetFloat64("fail-under")
		opts := a11y.Options{LightOnly: lightOnly}

		v := a11y.NewValidator(themes.Default(), logger)

		if design != "" {
			report, err := v.ValidateNamed(design, preset, opts)
			if err != nil {
				fail("%v", err)
			}
			if asJSON {
				printJSON(report)
			} else {
				printReport(report)
			}
			if report.Score < failUnder {
				os.Exit(1)
			}
			return
		}

		reports := v.ValidateAll(opts)
		summary := a11y.Summarize(reports)
		if asJSON {
			printJSON(map[string]interface{}{"summary": summary, "reports": reports})
		} else {
			printSummary(summary)
		}
		if summary.AverageScore < failUnder {
			os.Exit(1)
		}
	},
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail("%v", err)
	}
	fmt.Println(string(data))
}

func printReport(r a11y.Report) {
	fmt.Printf("%s + %s: score %.1f (%s)\n", r.DesignSystem, r.ColorPreset, r.Score, a11y.Grade(r.Score))
	fmt.Printf("Contrast pairs passing AA: %d/%d\n\n", r.Passed, r.Total)

	keys := make([]string, 0, len(r.Contrast))
	for k := range r.Contrast {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PAIR\tRATIO\tLEVEL")
	for _, k := range keys {
		c := r.Contrast[k]
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", k, c.Ratio, c.Level)
	}
	w.Flush()

	fmt.Printf("\nFocus visible: %t  Motion safe: %t  Color independent: %t\n", r.FocusVisible, r.MotionSafe, r.ColorIndependent)
	for _, issue := range r.Issues {
		fmt.Printf("  ! %s\n", issue)
	}
	for _, rec := range r.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

func printSummary(s a11y.Summary) {
	fmt.Printf("Validated %d combinations\n", s.Total)
	fmt.Printf("Average score: %.1f (%s)\n", s.AverageScore, a11y.Grade(s.AverageScore))
	fmt.Printf("Passing (>= 70): %d\n", s.Passing)
	fmt.Printf("Fully AA compliant: %d\n", s.AACompliant)
	if s.Failed > 0 {
		fmt.Printf("Could not validate: %d\n", s.Failed)
	}
	if len(s.Worst) == 0 {
		return
	}

	fmt.Println("\nLowest scores:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMBINATION\tSCORE\tISSUES")
	for _, r := range s.Worst {
		fmt.Fprintf(w, "%s\t%.1f\t%d\n", r.Key(), r.Score, len(r.Issues))
	}
	w.Flush()
}

func init() {
	validateCmd.Flags().String("design", "", "design system to validate (default: all combinations)")
	validateCmd.Flags().String("preset", "default", "color preset, used with --design")
	validateCmd.Flags().Bool("light-only", false, "skip dark mode pairs")
	validateCmd.Flags().Bool("json", false, "print JSON instead of text")
	validateCmd.Flags().Float64("fail-under", 0, "exit non-zero when the score is below this value")
	rootCmd.AddCommand(validateCmd)
}
