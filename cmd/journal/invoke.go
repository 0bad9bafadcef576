package main

import (
	"context"
	"encoding/json"
	"fmt"

	"trading-journal/internal/client"

	"github.com/spf13/cobra"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <command> [json-args]",
	Short: "Invoke a journal command on a running backend",
	Example: `  journal invoke get_accounts
  journal invoke get_trades '{"accountId": 1}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := bootstrap()
		defer func() { _ = log.Sync() }()

		var raw json.RawMessage
		if len(args) == 2 {
			raw = json.RawMessage(args[1])
			if !json.Valid(raw) {
				return fmt.Errorf("arguments are not valid JSON: %s", args[1])
			}
		}

		c := client.NewClient(&cfg.Client, log)
		result, err := c.InvokeRaw(context.Background(), args[0], raw)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(result))
		return nil
	},
}
