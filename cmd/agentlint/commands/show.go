package commands

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentlint/agentlint/internal/errors"
	"github.com/agentlint/agentlint/internal/skill/meta"
	"github.com/agentlint/agentlint/internal/skill/toolperm"
	"github.com/agentlint/agentlint/internal/toolconfig"
	"github.com/agentlint/agentlint/pkg/fileutil"
)

func init() {
	showCmd.AddCommand(showSkillCmd)
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a parsed view of a document",
	Long: `Display the typed metadata of a well-formed document.

Unlike validate, show fails outright on malformed input. Run the
matching validate subcommand first when show refuses a document.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var showSkillCmd = &cobra.Command{
	Use:   "skill <path>",
	Short: "Display skill metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := meta.Load(args[0])
		if err != nil {
			return errors.NewUserError(err, "Run 'agentlint validate skill' for diagnostics")
		}

		out := cmd.OutOrStdout()
		label := color.New(color.Bold).SprintFunc()
		fmt.Fprintf(out, "%s %s\n", label("Name:"), m.Name)
		fmt.Fprintf(out, "%s %s\n", label("Description:"), m.Description)
		if m.License != "" {
			fmt.Fprintf(out, "%s %s\n", label("License:"), m.License)
		}
		if m.AllowedTools != "" {
			perms, err := m.Permissions()
			if err != nil {
				fmt.Fprintf(out, "%s %s (unparseable)\n", label("Allowed tools:"), m.AllowedTools)
			} else {
				fmt.Fprintf(out, "%s %s\n", label("Allowed tools:"), toolperm.Format(perms))
			}
		}
		return nil
	},
}

var showConfigCmd = &cobra.Command{
	Use:   "config <path>",
	Short: "Display tool configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := fileutil.ReadFileWithLimit(args[0])
		if err != nil {
			return errors.NewSystemError(err, "Check that the file exists and is readable")
		}
		cfg, err := toolconfig.Decode(string(data))
		if err != nil {
			return errors.NewUserError(err, "Run 'agentlint validate config' for diagnostics")
		}

		out := cmd.OutOrStdout()
		label := color.New(color.Bold).SprintFunc()
		fmt.Fprintf(out, "%s %s\n", label("Model:"), cfg.Model)
		fmt.Fprintf(out, "%s %s\n", label("Approval policy:"), cfg.ApprovalPolicy)
		fmt.Fprintf(out, "%s %s\n", label("Sandbox mode:"), cfg.SandboxMode)

		if len(cfg.MCPServers) > 0 {
			fmt.Fprintln(out, label("MCP servers:"))
			for _, name := range sortedKeys(cfg.MCPServers) {
				fmt.Fprintf(out, "  %s: %s\n", name, cfg.MCPServers[name].Command)
			}
		}
		if len(cfg.Profiles) > 0 {
			fmt.Fprintln(out, label("Profiles:"))
			for _, name := range sortedKeys(cfg.Profiles) {
				p := cfg.Profiles[name]
				fmt.Fprintf(out, "  %s: approval=%s sandbox=%s\n",
					name, orDash(p.ApprovalPolicy), orDash(p.SandboxMode))
			}
		}
		return nil
	},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
