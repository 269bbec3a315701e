package isa

import (
	"fmt"
	"os"

	"github.com/Manu343726/tdesc/pkg/isa"
	"github.com/Manu343726/tdesc/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// =============================================================================
// Color definitions for CLI output
// =============================================================================

var (
	colorHeader  = color.New(color.FgWhite, color.Bold, color.Underline)
	colorBank    = color.New(color.FgCyan, color.Bold)
	colorClass   = color.New(color.FgYellow)
	colorReg     = color.New(color.FgGreen)
	colorAlias   = color.New(color.FgMagenta)
	colorHiBlack = color.New(color.FgHiBlack)
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump target",
	Short: "Dump the register description of a target",
	Long: `Dumps the full register description of a target to stdout: its register
banks, the register classes sliced out of them, and the alias table binding
identifiers to concrete registers.`,
	Args: targetArgs(),
	Run: func(cmd *cobra.Command, args []string) {
		description, err := describeTarget(args[0])

		if err != nil {
			fmt.Fprintf(os.Stderr, "error building target description: %v\n", err)
			os.Exit(1)
		}

		dumpDescription(description)
	},
}

func dumpDescription(d *isa.TargetDescription) {
	colorHeader.Printf("target %v\n", d.Isa())

	colorHeader.Println("\nregister banks")

	for _, bank := range d.AllBanks() {
		colorBank.Printf("  %v", bank.Name())
		fmt.Printf(" (%v registers, prefix '%v') ", bank.RegisterCount(), bank.Prefix())
		colorHiBlack.Printf("%v\n", bank.Description())
	}

	colorHeader.Println("\nregister classes")

	for _, class := range d.AllClasses() {
		colorClass.Printf("  %v", class.Name())
		fmt.Printf(" (bank %v): ", class.Bank())
		colorReg.Printf("%v\n", utils.FormatSlice(d.MemberNames(class), " "))
	}

	colorHeader.Println("\naliases")

	aliases := d.AllAliases()
	width := utils.Max(utils.Map(aliases, func(alias isa.AliasBinding) int { return len(alias.Identifier) }))

	for _, alias := range aliases {
		colorAlias.Printf("  %-*v", width, alias.Identifier)
		fmt.Printf(" -> %v\n", alias.Handle)
	}
}

func init() {
	IsaCmd.AddCommand(dumpCmd)
}
