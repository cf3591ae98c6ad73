package cmd

import (
	"fmt"
	"os"

	"gwctl/internal/gw"
	"gwctl/internal/logx"

	"github.com/spf13/cobra"
)

var (
	flagDevice  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "gwctl",
	Short:         "Control a Greaseweazle floppy controller",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		for _, line := range gw.InstructionLines(err) {
			fmt.Fprintln(os.Stderr, line)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		logx.EnableDebug(flagVerbose)
		if flagVerbose {
			logx.Debugf("debug logging enabled")
		}
	})

	rootCmd.PersistentFlags().StringVar(&flagDevice, "device", "", "Serial device (e.g. /dev/ttyACM0, COM5). Auto-detected if unset")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose debug logging")
}
