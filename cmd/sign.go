package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"signalrelay/internal/webhook"

	"github.com/spf13/cobra"
)

var signSecret string

var signCmd = &cobra.Command{
	Use:   "sign [BODY]",
	Short: "Print the webhook signature of a request body",
	Long: `sign prints hex(HMAC-SHA256(secret, body)), the value expected in the
signature header. The body is read from stdin when no argument is given.

Example:
  relay sign --secret s3cr3t '{"ticker":"AAPL","signal":"BUY"}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSign,
}

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.Flags().StringVarP(&signSecret, "secret", "s", os.Getenv("WEBHOOK_SECRET"), "webhook secret (default $WEBHOOK_SECRET)")
}

func runSign(cmd *cobra.Command, args []string) error {
	if signSecret == "" {
		return errors.New("secret is required")
	}
	var body []byte
	if len(args) == 1 {
		body = []byte(args[0])
	} else {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		body = b
	}
	fmt.Fprintln(cmd.OutOrStdout(), webhook.SignHex(signSecret, body))
	return nil
}
