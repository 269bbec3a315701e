package isa

import (
	"fmt"
	"os"

	"github.com/Manu343726/tdesc/pkg/isa/llvm"
	"github.com/spf13/cobra"
)

var tablegenOutputFile string

// tablegenCmd represents the tablegen command
var tablegenCmd = &cobra.Command{
	Use:   "tablegen target",
	Short: "Generate LLVM tablegen register info files for a target",
	Long: `Emits the register banks, registers and register classes of a target as an
LLVM tablegen RegisterInfo file, ready to be consumed by an LLVM backend.

See https://llvm.org/docs/CodeGenerator.html for more information about LLVM
code generation.`,
	Args: targetArgs(),
	Run: func(cmd *cobra.Command, args []string) {
		description, err := describeTarget(args[0])

		if err != nil {
			fmt.Fprintf(os.Stderr, "error building target description: %v\n", err)
			os.Exit(1)
		}

		g, err := llvm.NewGenerator()

		if err != nil {
			fmt.Fprintf(os.Stderr, "error initializing llvm.Generator: %v\n", err)
			os.Exit(1)
		}

		if len(tablegenOutputFile) == 0 {
			err = g.GenerateTo(os.Stdout, description)
		} else {
			err = g.Generate(tablegenOutputFile, description)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating register info file: %v\n", err)
			os.Exit(2)
		}
	},
}

func init() {
	IsaCmd.AddCommand(tablegenCmd)
	tablegenCmd.Flags().StringVarP(&tablegenOutputFile, "output-file", "o", "", "Output file. If omitted, the output will be written to stdout")
}
