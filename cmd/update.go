package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Put the device into firmware update mode",
	Long: `Connects to the device and switches it into its bootloader
firmware, installing it ready for a firmware image download. Devices
without jumperless update support need the Update Jumper installed
first; the command prints the pin names for the connected model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := opCtx(cmd.Context())
		defer stop()

		sess, err := connect(ctx, true)
		if err != nil {
			return err
		}
		defer sess.Finish(ctx)

		fmt.Printf("Device on %s is in update mode (bootloader v%d.%d).\n",
			sess.Port.Path, sess.Info.FWMajor, sess.Info.FWMinor)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
