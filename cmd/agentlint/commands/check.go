package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentlint/agentlint/internal/checkup"
	"github.com/agentlint/agentlint/internal/errors"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate every artifact found in a project",
	Long: `Discover and validate all onboarding artifacts under a directory:
instructions documents, skill definitions, and tool configuration files.

Unlike validate, check never complains about absent documents; it reports
on whatever it finds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		report, err := checkup.Run(root)
		if err != nil {
			return errors.NewSystemError(err, "Check that the directory is readable")
		}

		out := cmd.OutOrStdout()
		if checkJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(report); err != nil {
				return errors.NewSystemError(err, "")
			}
		} else {
			renderCheckReport(cmd, report)
		}

		if report.HasFailures() {
			return errors.ErrValidationFailed
		}
		return nil
	},
}

func renderCheckReport(cmd *cobra.Command, report *checkup.Report) {
	out := cmd.OutOrStdout()

	if len(report.Documents) == 0 {
		fmt.Fprintf(out, "No documents found under %s\n", report.Root)
		return
	}

	for _, doc := range report.Documents {
		var badge string
		switch doc.Status {
		case checkup.StatusPass:
			badge = color.GreenString("✓")
		case checkup.StatusWarn:
			badge = color.YellowString("!")
		default:
			badge = color.RedString("✗")
		}
		fmt.Fprintf(out, "%s %s (%s)\n", badge, doc.Path, doc.Kind)

		for _, d := range doc.Result.Errors {
			fmt.Fprintf(out, "    %s %s\n", color.RedString("error:"), d)
		}
		for _, d := range doc.Result.Warnings {
			fmt.Fprintf(out, "    %s %s\n", color.YellowString("warning:"), d)
		}
	}

	s := report.Summary
	fmt.Fprintf(out, "\n%d passed, %d with warnings, %d failed\n",
		s.Passed, s.Warnings, s.Failed)
}
