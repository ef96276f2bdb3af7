package commands

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentlint/agentlint/internal/cli/prompt"
	"github.com/agentlint/agentlint/internal/errors"
	"github.com/agentlint/agentlint/internal/instructions"
	"github.com/agentlint/agentlint/internal/logging"
	"github.com/agentlint/agentlint/internal/paths"
	skillvalidator "github.com/agentlint/agentlint/internal/skill/validator"
	"github.com/agentlint/agentlint/internal/toolconfig"
	"github.com/agentlint/agentlint/internal/validator"
	"github.com/agentlint/agentlint/pkg/fileutil"
)

var (
	validateJSON   bool
	validateOutput string
	validatePick   bool
)

func init() {
	validateCmd.PersistentFlags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	validateCmd.PersistentFlags().StringVar(&validateOutput, "output", "",
		"write the report to a file instead of stdout")
	validateCmd.PersistentFlags().BoolVar(&validatePick, "pick", false,
		"interactively pick one document when several are found")

	validateCmd.AddCommand(newValidateKindCmd(paths.KindInstructions,
		"Validate a project-instructions document",
		instructions.Validate))
	validateCmd.AddCommand(newValidateKindCmd(paths.KindSkill,
		"Validate a skill-definition document",
		skillvalidator.Validate))
	validateCmd.AddCommand(newValidateKindCmd(paths.KindConfig,
		"Validate a tool configuration file",
		toolconfig.Validate))

	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an onboarding artifact",
	Long: `Validate one of the three document kinds agentlint understands.

Given a file path, the file is validated directly. Given a directory
(or no argument, meaning the current directory), candidate documents of
the requested kind are discovered and each is validated.

Exit codes:
  0 - All documents are valid
  1 - At least one document failed validation
  2 - A system error occurred (unreadable file, etc.)`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// newValidateKindCmd builds the validate subcommand for one document kind.
func newValidateKindCmd(kind, short string, validate func(string) *validator.Result) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " [path]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}
			return runValidate(cmd, kind, target, validate)
		},
	}
}

// runValidate resolves the target to document paths, validates each, and
// reports. The validators themselves only ever see in-memory text.
func runValidate(cmd *cobra.Command, kind, target string, validate func(string) *validator.Result) error {
	docs, err := resolveDocuments(cmd, kind, target)
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context())
	failed := false
	for _, path := range docs {
		data, err := fileutil.ReadFileWithLimit(path)
		if err != nil {
			return errors.NewSystemError(err, "Check that the file exists and is readable")
		}

		result := validate(string(data))
		logger.Debug("validated document",
			"kind", kind,
			"path", path,
			"errors", len(result.Errors),
			"warnings", len(result.Warnings))

		if len(docs) > 1 && validateOutput == "" && !validateJSON {
			cmd.Printf("%s:\n", path)
		}
		if err := report(cmd.OutOrStdout(), result); err != nil {
			return errors.NewSystemError(err, "Check that the output destination is writable")
		}
		if !result.Valid() {
			failed = true
		}
	}

	if failed {
		return errors.ErrValidationFailed
	}
	return nil
}

// resolveDocuments maps a file or directory target to the list of document
// paths to validate.
func resolveDocuments(cmd *cobra.Command, kind, target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, errors.NewSystemError(
			errors.Wrapf(err, "resolving %q", target),
			"Check that the path exists")
	}
	if !info.IsDir() {
		return []string{target}, nil
	}

	docs, err := paths.Discover(target, kind)
	if err != nil {
		return nil, errors.NewSystemError(err, "Check that the directory is readable")
	}
	if len(docs) == 0 {
		return nil, errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "no %s document under %q", kind, target),
			"Expected one of: "+joinNames(paths.FileNames(kind)))
	}

	if validatePick && len(docs) > 1 {
		var path string
		if logging.IsTTY(cmd.OutOrStdout()) {
			path, err = prompt.FuzzySelectPath(docs)
		} else {
			path, err = prompt.NewSelector().SelectPath(kind, docs)
		}
		if err != nil {
			return nil, errors.NewUserError(err, "Pass an explicit file path instead")
		}
		return []string{path}, nil
	}

	return docs, nil
}

// report renders a result to stdout or, with --output, to a file.
func report(out io.Writer, result *validator.Result) error {
	format := validator.FormatText
	if validateJSON || (cfg != nil && cfg.Output == "json") {
		format = validator.FormatJSON
	}

	if validateOutput == "" {
		return validator.NewReporter(out, format).Report(result)
	}

	if format == validator.FormatJSON {
		return fileutil.AtomicWriteJSON(validateOutput, result)
	}

	var buf bytes.Buffer
	if err := validator.NewReporter(&buf, format).Report(result); err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(validateOutput, buf.Bytes(), 0o644)
}

func joinNames(names []string) string {
	s := ""
	for i, name := range names {
		if i > 0 {
			s += ", "
		}
		s += name
	}
	return s
}
