// Package main is the entry point for the ability runtime server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-abilities/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-abilities",
	Short: "RPG ability runtime",
	Long: `rpg-abilities runs weapon abilities for real-time combat: it gates them on energy,
compiles catalog entries into execution state machines and ticks them frame by frame.`,
	PersistentPreRunE: initConfig,
	SilenceUsage:      true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("catalog", "config/catalog.yaml", "ability and item catalog file")

	// nolint:errcheck // flags are defined above
	_ = viper.BindPFlag(keyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(keyCatalogPath, rootCmd.PersistentFlags().Lookup("catalog"))

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
