package isa

import (
	"fmt"
	"log/slog"

	"github.com/Manu343726/tdesc/pkg/isa"
	"github.com/Manu343726/tdesc/pkg/isa/targets"
	"github.com/Manu343726/tdesc/pkg/utils"
	"github.com/spf13/cobra"
)

// isaCmd represents the isa command
var IsaCmd = &cobra.Command{
	Use:   "isa",
	Short: "Inspect and export target register descriptions",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the targets shipped with tdesc",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range targets.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	IsaCmd.AddCommand(listCmd)
}

// Builds the register description of the target named by the command argument
func describeTarget(name string) (*isa.TargetDescription, error) {
	slog.Debug("building target register description", "target", name)

	description, err := targets.Describe(name)

	if err != nil {
		return nil, err
	}

	slog.Debug("target register description built",
		"target", name,
		"banks", len(description.AllBanks()),
		"classes", len(description.AllClasses()),
		"aliases", len(description.AllAliases()))

	return description, nil
}

// Standard Args validator for subcommands taking exactly one target name
func targetArgs() cobra.PositionalArgs {
	return cobra.MatchAll(cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		if _, exists := targets.All[args[0]]; !exists {
			return fmt.Errorf("unknown target '%v', supported targets: %v", args[0], utils.FormatSlice(targets.Names(), ", "))
		}

		return nil
	})
}
