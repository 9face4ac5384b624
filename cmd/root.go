/*
Copyright © 2026 Erawpalassalg
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gdtools",
	Short: "Dice and dice pool toolkit for tabletop game design",
	Long: `GDTools models dice and dice pools as exact outcome distributions.

Build pools from dice notation (2d6+1d4-1), inspect their distributions,
query the odds of beating a threshold, and evaluate balance rules such as
'avg("2d6+3") > avg("1d12+2")'.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gdtools.yaml)")
	rootCmd.PersistentFlags().String("library", "", "path to the YAML dice expression library")
	viper.BindPFlag("library", rootCmd.PersistentFlags().Lookup("library"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gdtools")
	}

	viper.SetEnvPrefix("GDTOOLS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
