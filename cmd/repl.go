/*
Copyright © 2026 Erawpalassalg
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Erawpalassalg/GDTools/internal/library"
	"github.com/Erawpalassalg/GDTools/internal/rules"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive dice workbench",
	Long: `Starts the read-eval-print loop for exploring dice expressions.
Usage:
	> 2d6+3
	> show 2d6
	> check avg("2d6") > 6.5`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		lib, err := library.Load(libraryPath())
		if err != nil {
			fmt.Printf("Failed to load expression library: %v\n", err)
			os.Exit(1)
		}

		registry, err := rules.NewRegistry(nil)
		if err != nil {
			fmt.Printf("Failed to bootstrap rule evaluator: %v\n", err)
			os.Exit(1)
		}

		if err := RunTUI(lib, registry); err != nil {
			fmt.Printf("Fatal TUI Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
