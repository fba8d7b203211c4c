package command

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/v-byte-cpu/wif/pkg/dot11"
)

func newInjectCmd() *injectCmd {
	c := &injectCmd{}

	cmd := &cobra.Command{
		Use: "inject [flags] hexframe",
		Example: strings.Join([]string{
			"inject c0003a01ffffffffffff001122334455001122334455000007000",
			"inject -c 100 -r 10/s 'c0:00:3a:01:ff:ff:ff:ff:ff:ff:00:11:22:33:44:55:00:11:22:33:44:55:00:00:07:00'"}, "\n"),
		Short: "Inject a raw 802.11 frame",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errNoHexFrame
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err = c.opts.parseRawOptions(); err != nil {
				return
			}
			var frame []byte
			if frame, err = parseHexFrame(args[0]); err != nil {
				return
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			wif := c.opts.openBackend()
			defer wif.Close()
			return c.opts.injectFrames(ctx, "inject", c.opts.newReadWriter(wif), dot11.NewRawFiller(frame))
		},
	}

	c.opts.initCliFlags(cmd, 1)

	c.cmd = cmd
	return c
}

type injectCmd struct {
	cmd  *cobra.Command
	opts injectCmdOpts
}
