package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device, firmware and capability details",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := opCtx(cmd.Context())
		defer stop()

		sess, err := connect(ctx, false)
		if err != nil {
			return err
		}
		defer sess.Finish(ctx)

		fmt.Printf("Port:           %s\n", sess.Port.Path)
		if sess.Port.SerialNumber != "" {
			fmt.Printf("Serial:         %s\n", sess.Port.SerialNumber)
		}
		fmt.Printf("Model:          F%d", sess.Info.HWModel)
		if sess.Info.HWSubmodel != 0 {
			fmt.Printf(".%d", sess.Info.HWSubmodel)
		}
		fmt.Println()
		fmt.Printf("Firmware:       v%d.%d (%s mode)\n", sess.Info.FWMajor, sess.Info.FWMinor, sess.Info.Mode)
		fmt.Printf("Jumperless:     %v\n", sess.JumperlessUpdate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
