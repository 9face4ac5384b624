/*
Copyright © 2026 Erawpalassalg
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate <expression>",
	Short: "Roll an expression many times and compare against the exact average",
	Long: `Rolls the expression N times and reports the empirical mean, minimum
and maximum next to the exact figures from the enumerated distribution.
Useful as a sanity check of the random roller.
Usage:
	gdtools simulate 2d6+1 -n 100000`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pool, err := resolveExpr(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		trials, _ := cmd.Flags().GetInt("trials")
		if trials < 1 {
			trials = 1
		}

		bar := progressbar.Default(int64(trials), fmt.Sprintf("Rolling %s", pool))

		sum := 0
		low, high := pool.Max(), pool.Min()
		for i := 0; i < trials; i++ {
			total := pool.Roll()
			sum += total
			if total < low {
				low = total
			}
			if total > high {
				high = total
			}
			bar.Add(1)
		}

		fmt.Printf("\n%s over %d rolls:\n", pool, trials)
		fmt.Printf("empirical mean %.4f (exact %.4f)\n", float64(sum)/float64(trials), pool.Average())
		fmt.Printf("observed range %d..%d (exact %d..%d)\n", low, high, pool.Min(), pool.Max())
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntP("trials", "n", 10000, "Number of rolls to simulate")
}
