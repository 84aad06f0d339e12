// Package cli implements the wellness-agent CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	configFile string
	debug      bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "wellness-agent",
	Short: "Voice-driven daily wellness check-in agent",
	Long: "A daily check-in companion: it records mood, energy and goals for the day " +
		"through a conversational tool surface and keeps an append-only history log.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: $WELLNESS_CONFIG)")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
