package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "samovar",
	Short: "Samovar is a conversational café ordering engine",
	Long:  `Samovar drives a menu-browsing, cart-building order flow from a declarative YAML menu.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("menu", "configs/menu.yaml", "Path to the YAML menu definition")
}
