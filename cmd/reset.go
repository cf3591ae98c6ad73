package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the device to a quiescent state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := opCtx(cmd.Context())
		defer stop()

		sess, err := connect(ctx, false)
		if err != nil {
			return err
		}
		defer sess.Finish(ctx)

		if err := sess.Reset(); err != nil {
			return fmt.Errorf("reset device: %w", err)
		}
		fmt.Println("Device reset.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
