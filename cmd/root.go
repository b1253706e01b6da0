package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "relay",
	Short: "Relay signed trade signals to a broker and configure presets over Telegram",
	Long: `relay receives BUY/SELL alerts on /webhook, verifies their HMAC signature,
decides whether to trade using the operator's per-ticker presets and places limit
orders through the configured broker. The operator manages presets and the webhook
secret by chatting with the Telegram bot (/telegram).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "conf/config.yaml", "config file")
}
