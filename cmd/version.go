package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vantrou/memnode/internal/engine/config"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Print node version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.NodeVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
