package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/tdesc/pkg/isa/targets"
	"github.com/Manu343726/tdesc/pkg/utils"
	"github.com/spf13/cobra"
)

var module string
var supportedModules = map[string]func() (string, error){
	"isa.registers": registersDocs,
}

// Dumps the register description documentation of every shipped target
func registersDocs() (string, error) {
	var builder strings.Builder

	for _, name := range targets.Names() {
		description, err := targets.Describe(name)

		if err != nil {
			return "", err
		}

		builder.WriteString(description.Documentation(0))
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show tdesc documentation",
	Long: `Dumps the documentation of the specified tdesc module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.SortedKeys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.MaximumNArgs(1), cobra.MinimumNArgs(1)),
	ValidArgs: utils.Keys(supportedModules),
	Run: func(cmd *cobra.Command, args []string) {
		module = args[0]
		docs, err := supportedModules[module]()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error building documentation:", err)
			os.Exit(1)
		}
		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				fmt.Println("Error creating file:", err)
				os.Exit(1)
			}
			defer file.Close()
			fmt.Fprintln(file, docs)
		} else {
			fmt.Println(docs)
		}
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
