package command

import (
	"os"

	"github.com/spf13/cobra"
)

func Main(version string) {
	if err := newRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wif",
		Short:   "Capture and inject 802.11 frames",
		Version: version,
	}
	cmd.AddCommand(
		newSniffCmd().cmd,
		newInjectCmd().cmd,
		newDeauthCmd().cmd,
		newInfoCmd().cmd,
	)
	return cmd
}
