package isa

import (
	"fmt"
	"os"

	"github.com/Manu343726/tdesc/pkg/isa"
	"github.com/Manu343726/tdesc/pkg/isa/regs"
	"github.com/Manu343726/tdesc/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportOutputFile string

// YAML document layout of an exported target description. Mirrors the three
// read-only tables consumed by code generation stages.
type targetDocument struct {
	Isa     string          `yaml:"isa"`
	Banks   []bankDocument  `yaml:"banks"`
	Classes []classDocument `yaml:"classes"`
	Aliases []aliasDocument `yaml:"aliases"`
}

type bankDocument struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Registers   int    `yaml:"registers"`
	Prefix      string `yaml:"prefix"`
}

type classDocument struct {
	Name    string `yaml:"name"`
	Bank    string `yaml:"bank"`
	Members []int  `yaml:"members,flow"`
}

type aliasDocument struct {
	Name  string `yaml:"name"`
	Bank  string `yaml:"bank"`
	Index int    `yaml:"index"`
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export target",
	Short: "Export the register description of a target as YAML",
	Long: `Exports the register banks, register classes and alias table of a target as a
YAML document, for code generators not written in Go.`,
	Args: targetArgs(),
	Run: func(cmd *cobra.Command, args []string) {
		description, err := describeTarget(args[0])

		if err != nil {
			fmt.Fprintf(os.Stderr, "error building target description: %v\n", err)
			os.Exit(1)
		}

		document, err := yaml.Marshal(makeDocument(description))

		if err != nil {
			fmt.Fprintf(os.Stderr, "error marshalling target description: %v\n", err)
			os.Exit(2)
		}

		if len(exportOutputFile) == 0 {
			fmt.Print(string(document))
		} else if err := os.WriteFile(exportOutputFile, document, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing output file: %v\n", err)
			os.Exit(2)
		}
	},
}

func makeDocument(d *isa.TargetDescription) targetDocument {
	return targetDocument{
		Isa: d.Isa(),
		Banks: utils.Map(d.AllBanks(), func(bank *regs.Bank) bankDocument {
			return bankDocument{
				Name:        bank.Name(),
				Description: bank.Description(),
				Registers:   bank.RegisterCount(),
				Prefix:      bank.Prefix(),
			}
		}),
		Classes: utils.Map(d.AllClasses(), func(class *regs.Class) classDocument {
			return classDocument{
				Name:    class.Name(),
				Bank:    class.Bank().Name(),
				Members: class.Members(),
			}
		}),
		Aliases: utils.Map(d.AllAliases(), func(alias isa.AliasBinding) aliasDocument {
			return aliasDocument{
				Name:  alias.Identifier,
				Bank:  alias.Handle.Bank.Name(),
				Index: alias.Handle.Index,
			}
		}),
	}
}

func init() {
	IsaCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutputFile, "output-file", "o", "", "Output file. If omitted, the output will be written to stdout")
}
