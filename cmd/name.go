/*
Copyright © 2026 Erawpalassalg
*/
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Erawpalassalg/GDTools/internal/library"
)

// nameCmd represents the name command
var nameCmd = &cobra.Command{
	Use:   "name [entry] [expression]",
	Short: "Manage the named expression library",
	Long: `Registers a named dice expression in the YAML library, or lists the
library when called without arguments.
Usage:
	gdtools name shortsword 1d6+3
	gdtools name`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		path := libraryPath()
		lib, err := library.Load(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if len(args) == 0 {
			if len(lib.Expressions) == 0 {
				fmt.Println("Library is empty.")
				return
			}
			names := make([]string, 0, len(lib.Expressions))
			for name := range lib.Expressions {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s: %s\n", name, lib.Expressions[name])
			}
			return
		}

		if len(args) != 2 {
			fmt.Println("Error: registering an entry takes a name and an expression")
			os.Exit(1)
		}

		if err := lib.Set(args[0], args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := lib.Save(path); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %s: %s\n", args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)
}
