package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.toml>",
		Short: "Replay a scenario file against a single document and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := mustCLIContext(cmd.Context())

			sc, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			if sc.Algorithm == "" {
				sc.Algorithm = cc.Algorithm
			}

			content, err := replayScenario(sc, cc.Agent, cc.Log)
			if err != nil {
				cc.Log.Error("scenario replay failed", zap.Error(err))
				return err
			}

			fmt.Println(strings.Join(content, ""))
			return nil
		},
	}
	return cmd
}
