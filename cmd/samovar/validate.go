package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/samovar/pkg/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the menu definition for consistency",
	Long:  `Loads the menu file and reports duplicate names, dangling references, orphaned sections, and invalid prices.`,
	Run: func(cmd *cobra.Command, args []string) {
		menu, _ := cmd.Flags().GetString("menu")
		if len(args) > 0 {
			menu = args[0]
		}

		c, err := catalog.Load(menu)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Menu is valid: %d items, root section %q.\n", c.Len(), c.Root().ID)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
