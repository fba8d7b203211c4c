package command

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/google/gopacket/layers"
	"github.com/spf13/cobra"
	"github.com/v-byte-cpu/wif/command/log"
	"github.com/v-byte-cpu/wif/pkg/dot11"
	"github.com/v-byte-cpu/wif/pkg/osdep"
	"github.com/v-byte-cpu/wif/pkg/packet"
)

// aireplay-ng sends deauthentication frames in bursts of 64
const defaultDeauthCount = 64

func newDeauthCmd() *deauthCmd {
	c := &deauthCmd{}

	cmd := &cobra.Command{
		Use: "deauth [flags]",
		Example: strings.Join([]string{
			"deauth --bssid 00:11:22:33:44:55",
			"deauth --bssid 00:11:22:33:44:55 --client 66:77:88:99:aa:bb --reason 3 -c 10 -r 10/s",
			"deauth --bssid 00:11:22:33:44:55 -c 0 --watch"}, "\n"),
		Short: "Inject deauthentication frames on behalf of an access point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err = c.opts.parseRawOptions(); err != nil {
				return
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			wif := c.opts.openBackend()
			defer wif.Close()
			return c.opts.deauth(ctx, wif, cmd.OutOrStdout())
		},
	}

	c.opts.initCliFlags(cmd)

	c.cmd = cmd
	return c
}

type deauthCmd struct {
	cmd  *cobra.Command
	opts deauthCmdOpts
}

type deauthCmdOpts struct {
	injectCmdOpts
	bssid  net.HardwareAddr
	client net.HardwareAddr
	reason uint16
	watch  bool
	json   bool

	rawBSSID  string
	rawClient string
}

func (o *deauthCmdOpts) initCliFlags(cmd *cobra.Command) {
	o.injectCmdOpts.initCliFlags(cmd, defaultDeauthCount)
	cmd.Flags().StringVar(&o.rawBSSID, "bssid", "", "set MAC address of the access point")
	cmd.Flags().StringVar(&o.rawClient, "client", "",
		strings.Join([]string{"set MAC address of the station to deauthenticate",
			"all stations of the access point by default"}, "\n"))
	cmd.Flags().Uint16Var(&o.reason, "reason", uint16(dot11.ReasonClass3FromNonAssoc), "set reason code")
	cmd.Flags().BoolVar(&o.watch, "watch", false, "print frames of the access point while injecting")
	cmd.Flags().BoolVar(&o.json, "json", false, "enable JSON output of watched frames")
}

func (o *deauthCmdOpts) parseRawOptions() (err error) {
	if err = o.injectCmdOpts.parseRawOptions(); err != nil {
		return
	}
	if len(o.rawBSSID) == 0 {
		return errNoBSSID
	}
	if o.bssid, err = net.ParseMAC(o.rawBSSID); err != nil {
		return
	}
	if len(o.rawClient) > 0 {
		if o.client, err = net.ParseMAC(o.rawClient); err != nil {
			return
		}
	}
	return
}

func (o *deauthCmdOpts) deauth(ctx context.Context, wif osdep.Wif, w io.Writer) (err error) {
	filler := dot11.NewDeauthFiller(o.bssid, o.client, layers.Dot11Reason(o.reason))
	rw := o.newReadWriter(wif)
	if !o.watch {
		return o.injectFrames(ctx, "deauth", rw, filler)
	}

	var logger log.Logger
	if logger, err = o.getLogger("deauth", w, o.json); err != nil {
		return
	}
	filterOpts := &frameFilterOpts{
		linkType: layers.LinkTypeIEEE80211Radio,
		bssid:    o.bssid,
		snapLen:  packet.DefaultSnapLen,
	}
	decoder, err := dot11.NewDecoder(filterOpts.linkType)
	if err != nil {
		return
	}

	rcvCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	results := make(chan log.Result, 1000)
	var p packet.Processor = newFrameProcessor(rcvCtx, decoder, results, 0, cancel, o.getZapLogger())
	if p, err = filterOpts.newProcessor(p); err != nil {
		return
	}
	// rw serializes the receiver with the injection below
	rcvErrc := packet.NewReceiver(rw, p).ReceiveFrames(rcvCtx)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		logger.LogResults(ctx, results)
	}()
	var rcvErr error
	go func() {
		defer wg.Done()
		// the receiver is the only producer of results
		defer close(results)
		for e := range rcvErrc {
			logger.Error(e)
			if packet.IsFatalError(e) {
				rcvErr = e
				cancel()
			}
		}
	}()

	err = o.injectFrames(rcvCtx, "deauth", rw, filler)
	cancel()
	wg.Wait()
	if err == nil {
		err = rcvErr
	}
	return
}
