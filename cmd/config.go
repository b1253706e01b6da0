package main

import (
	"fmt"

	"signalrelay/conf"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the config file with environment overrides and report every problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := conf.Load(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config ok: listen=%s broker=%s\n", cfg.Listen, cfg.Broker.Kind)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}
