/*
Copyright © 2026 Erawpalassalg
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// distCmd represents the dist command
var distCmd = &cobra.Command{
	Use:   "dist <expression>",
	Short: "Print the exact outcome distribution of a dice expression",
	Long: `Enumerates every combination of faces and prints the multiplicity of
each achievable total. Use --show for a tally view of small distributions,
or --yaml for machine-readable output.
Usage:
	gdtools dist 2d6
	gdtools dist 2d6 --show`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pool, err := resolveExpr(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		show, _ := cmd.Flags().GetBool("show")
		asYAML, _ := cmd.Flags().GetBool("yaml")
		dist := pool.Dist()

		if show {
			pool.Show(os.Stdout)
			return
		}

		if asYAML {
			counts := make(map[int]int, len(dist.Totals()))
			for _, total := range dist.Totals() {
				counts[total] = dist.Count(total)
			}
			data, err := yaml.Marshal(counts)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			os.Stdout.Write(data)
			return
		}

		fmt.Printf("%s: %d outcomes, average %.4f\n", pool, dist.Mass(), dist.Average())
		for _, total := range dist.Totals() {
			count := dist.Count(total)
			fmt.Printf("%4d  %6d  %7.4f%%\n", total, count, float64(count)/float64(dist.Mass())*100)
		}
	},
}

func init() {
	rootCmd.AddCommand(distCmd)

	distCmd.Flags().Bool("show", false, "Render the distribution as tally rows")
	distCmd.Flags().Bool("yaml", false, "Emit the total -> multiplicity map as YAML")
}
