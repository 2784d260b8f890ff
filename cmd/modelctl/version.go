// Version command for the modelctl CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wennys/modelbuddy"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the modelctl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("modelctl", modelbuddy.Version)
	},
}
