/*
Copyright © 2026 Erawpalassalg
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Erawpalassalg/GDTools/internal/rules"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <rule>",
	Short: "Evaluate a balance rule expression",
	Long: `Evaluates a CEL expression with the dice functions roll(expr),
avg(expr) and chance(expr, op, threshold) available, plus a 'globals' map
taken from the config file.
Usage:
	gdtools check 'avg("2d6+3") > avg("1d12+2")'
	gdtools check 'chance("3d6", ">=", 13) < 0.3'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := rules.NewRegistry(nil)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		context := map[string]any{}
		if globals := viper.GetStringMap("globals"); len(globals) > 0 {
			context["globals"] = globals
		}

		out, err := registry.Eval(args[0], context)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(out)
		if pass, ok := out.(bool); ok && !pass {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
