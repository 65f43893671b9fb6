package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/vantrou/memnode/hooks"
	"github.com/vantrou/memnode/internal/core/corestate"
	"github.com/vantrou/memnode/internal/engine/logs"
)

var rootCmd = &cobra.Command{
	Use:   "memnode",
	Short: "In-memory execution node",
	Long:  "Main runner for the in-memory execution node with a live configuration surface",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	log.SetOutput(os.Stdout)
	log.SetPrefix(logs.SetBrightBlack(fmt.Sprintf("(%s) ", corestate.StageNotReady)))
	log.SetFlags(log.Ldate | log.Ltime)
	hooks.Compositor.LoadCMDLine(rootCmd)
	_ = rootCmd.Execute()
}
