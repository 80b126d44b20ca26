package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/vitae"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vitae",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vitae version %s\n", strings.TrimSpace(vitae.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
