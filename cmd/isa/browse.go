package isa

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Manu343726/tdesc/pkg/isa"
	"github.com/Manu343726/tdesc/pkg/isa/regs"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse target",
	Short: "Browse the register description of a target interactively",
	Long: `Opens a terminal UI with one row per register of the target, showing its
display name, owning bank, bank index, class memberships and aliases.`,
	Args: targetArgs(),
	Run: func(cmd *cobra.Command, args []string) {
		description, err := describeTarget(args[0])

		if err != nil {
			fmt.Fprintf(os.Stderr, "error building target description: %v\n", err)
			os.Exit(1)
		}

		if err := browseDescription(description); err != nil {
			fmt.Fprintf(os.Stderr, "error running register browser: %v\n", err)
			os.Exit(2)
		}
	},
}

func browseDescription(d *isa.TargetDescription) error {
	app := tview.NewApplication()

	table := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)

	for column, header := range []string{"register", "bank", "index", "classes", "aliases"} {
		table.SetCell(0, column, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	row := 1

	for _, bank := range d.AllBanks() {
		for _, handle := range d.Handles(bank) {
			table.SetCell(row, 0, tview.NewTableCell(d.DisplayName(handle)).SetTextColor(tcell.ColorGreen))
			table.SetCell(row, 1, tview.NewTableCell(bank.Name()).SetTextColor(tcell.ColorAqua))
			table.SetCell(row, 2, tview.NewTableCell(fmt.Sprint(handle.Index)))
			table.SetCell(row, 3, tview.NewTableCell(strings.Join(classesOf(d, handle), " ")))
			table.SetCell(row, 4, tview.NewTableCell(strings.Join(aliasesOf(d, handle), " ")).SetTextColor(tcell.ColorFuchsia))
			row++
		}
	}

	table.SetBorder(true)
	table.SetTitle(fmt.Sprintf(" %v registers (q to quit) ", d.Isa()))

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
		}

		return event
	})

	return app.SetRoot(table, true).Run()
}

// Returns the names of all classes the given register is a member of
func classesOf(d *isa.TargetDescription, handle regs.Handle) []string {
	names := []string{}

	for _, class := range d.AllClasses() {
		if class.Bank() == handle.Bank && slices.Contains(class.Members(), handle.Index) {
			names = append(names, class.Name())
		}
	}

	return names
}

// Returns all alias identifiers bound to the given register, except its default name
func aliasesOf(d *isa.TargetDescription, handle regs.Handle) []string {
	names := []string{}

	for _, alias := range d.AllAliases() {
		if alias.Handle == handle && alias.Identifier != handle.Name() {
			names = append(names, alias.Identifier)
		}
	}

	return names
}

func init() {
	IsaCmd.AddCommand(browseCmd)
}
