package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/samovar"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of samovar",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("samovar version %s\n", samovar.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
