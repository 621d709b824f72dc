package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lum",
	Short: "lum runs a luminet node",
	Long:  `lum is the daemon of a luminet node, it manages the ledger state and serves client requests over gRPC.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
