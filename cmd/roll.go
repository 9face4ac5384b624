/*
Copyright © 2026 Erawpalassalg
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll <expression>",
	Short: "Roll a dice expression",
	Long: `Rolls a dice expression or a named library entry and prints each total.
Usage:
	gdtools roll 2d6+3
	gdtools roll shortsword -n 5`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pool, err := resolveExpr(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			count = 1
		}

		fmt.Printf("%s (range %d..%d, average %.2f)\n", pool, pool.Min(), pool.Max(), pool.Average())
		for i := 0; i < count; i++ {
			fmt.Println(pool.Roll())
		}
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().IntP("count", "n", 1, "Number of rolls to make")
}
