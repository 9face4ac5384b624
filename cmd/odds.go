/*
Copyright © 2026 Erawpalassalg
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// oddsCmd represents the odds command
var oddsCmd = &cobra.Command{
	Use:   "odds <expression> <comparator> <threshold>",
	Short: "Probability of a roll meeting a threshold",
	Long: `Computes the exact chance of a dice expression comparing favorably
against an integer threshold. Comparator is one of >, >=, <, <=.
Usage:
	gdtools odds 2d6+1 '>' 7`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		pool, err := resolveExpr(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		threshold, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Printf("Error: threshold must be an integer, got %q\n", args[2])
			os.Exit(1)
		}

		var rate float64
		switch args[1] {
		case ">":
			rate = pool.RGT(threshold)
		case ">=":
			rate = pool.RGE(threshold)
		case "<":
			rate = pool.RLT(threshold)
		case "<=":
			rate = pool.RLE(threshold)
		default:
			fmt.Printf("Error: unknown comparator %q (use >, >=, < or <=)\n", args[1])
			os.Exit(1)
		}

		fmt.Printf("P(%s %s %d) = %.4f (%.2f%%)\n", pool, args[1], threshold, rate, rate*100)
	},
}

func init() {
	rootCmd.AddCommand(oddsCmd)
}
