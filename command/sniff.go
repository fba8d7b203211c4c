package command

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/spf13/cobra"
	"github.com/v-byte-cpu/wif/command/log"
	"github.com/v-byte-cpu/wif/pkg/dot11"
	"github.com/v-byte-cpu/wif/pkg/packet"
	"go.uber.org/zap"
)

func newSniffCmd() *sniffCmd {
	c := &sniffCmd{}

	cmd := &cobra.Command{
		Use: "sniff [flags]",
		Example: strings.Join([]string{
			"sniff -c 10",
			"sniff --type mgt --filter 'subtype beacon' --uniq",
			"sniff --bssid 00:11:22:33:44:55 --json"}, "\n"),
		Short: "Capture 802.11 frames and print one line per frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err = c.opts.parseRawOptions(); err != nil {
				return
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			wif := c.opts.openBackend()
			defer wif.Close()
			return c.opts.sniff(ctx, packet.NewSource(wif, c.opts.snapLen), cmd.OutOrStdout())
		},
	}

	c.opts.initCliFlags(cmd)

	c.cmd = cmd
	return c
}

type sniffCmd struct {
	cmd  *cobra.Command
	opts sniffCmdOpts
}

type frameFilterOpts struct {
	frameType string
	filter    string
	linkType  layers.LinkType
	bssid     net.HardwareAddr
	snapLen   int

	rawBSSID    string
	rawLinkType string
}

func (o *frameFilterOpts) initCliFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.frameType, "type", "", "capture only frames of type mgt, ctl or data")
	cmd.Flags().StringVar(&o.rawBSSID, "bssid", "", "capture only frames of the BSS with this MAC address")
	cmd.Flags().StringVar(&o.filter, "filter", "",
		strings.Join([]string{"set additional tcpdump filter expression",
			"e.g. 'subtype beacon' or 'wlan src 00:11:22:33:44:55'"}, "\n"))
	cmd.Flags().StringVar(&o.rawLinkType, "link-type", "radiotap",
		"set link type of captured frames, one of radiotap, dot11")
	cmd.Flags().IntVar(&o.snapLen, "snaplen", packet.DefaultSnapLen, "set max captured frame length")
}

func (o *frameFilterOpts) parseRawOptions() (err error) {
	if o.frameType, err = parseFrameType(o.frameType); err != nil {
		return
	}
	if len(o.rawBSSID) > 0 {
		if o.bssid, err = net.ParseMAC(o.rawBSSID); err != nil {
			return
		}
	}
	if o.linkType, err = parseLinkType(o.rawLinkType); err != nil {
		return
	}
	if o.snapLen <= 0 {
		return errSnapLen
	}
	return
}

func (o *frameFilterOpts) bpfExpr() string {
	return dot11.BPFFilter(&dot11.FilterOptions{Type: o.frameType, BSSID: o.bssid}, o.filter)
}

// newProcessor wraps p into a userland BPF filter if any filter options are set.
func (o *frameFilterOpts) newProcessor(p packet.Processor) (packet.Processor, error) {
	expr := o.bpfExpr()
	if len(expr) == 0 {
		return p, nil
	}
	filter, err := packet.NewBPFFilter(o.linkType, o.snapLen, expr)
	if err != nil {
		return nil, err
	}
	return packet.NewFilterProcessor(filter, p), nil
}

type sniffCmdOpts struct {
	backendCmdOpts
	frameFilterOpts
	json  bool
	uniq  bool
	count int
}

func (o *sniffCmdOpts) initCliFlags(cmd *cobra.Command) {
	o.backendCmdOpts.initCliFlags(cmd)
	o.frameFilterOpts.initCliFlags(cmd)
	cmd.Flags().BoolVar(&o.json, "json", false, "enable JSON output")
	cmd.Flags().BoolVar(&o.uniq, "uniq", false, "print only the first frame of each type, source and BSS")
	cmd.Flags().IntVarP(&o.count, "count", "c", 0,
		strings.Join([]string{"exit after capturing count frames", "0 captures until interrupted"}, "\n"))
}

func (o *sniffCmdOpts) parseRawOptions() (err error) {
	if err = o.backendCmdOpts.parseRawOptions(); err != nil {
		return
	}
	if err = o.frameFilterOpts.parseRawOptions(); err != nil {
		return
	}
	if o.count < 0 {
		return errCount
	}
	return
}

func (o *sniffCmdOpts) sniff(ctx context.Context, r packet.Reader, w io.Writer) (err error) {
	var logger log.Logger
	if logger, err = o.getLogger("sniff", w, o.json); err != nil {
		return
	}
	if o.uniq {
		logger = log.NewUniqueLogger(logger)
	}
	var decoder *dot11.Decoder
	if decoder, err = dot11.NewDecoder(o.linkType); err != nil {
		return
	}

	rcvCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan log.Result, 1000)
	var p packet.Processor = newFrameProcessor(rcvCtx, decoder, results, o.count, cancel, o.getZapLogger())
	if p, err = o.newProcessor(p); err != nil {
		return
	}
	errc := packet.NewReceiver(r, p).ReceiveFrames(rcvCtx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.LogResults(ctx, results)
	}()

	for e := range errc {
		logger.Error(e)
		if packet.IsFatalError(e) {
			err = e
			cancel()
		}
	}
	// the receiver is the only producer of results
	close(results)
	wg.Wait()
	return
}

// frameProcessor decodes captured frames into results
// and stops capturing after limit frames if limit is positive.
type frameProcessor struct {
	ctx     context.Context
	decoder *dot11.Decoder
	results chan<- log.Result
	limit   int
	count   int
	stop    func()
	zapl    *zap.Logger
}

func newFrameProcessor(ctx context.Context, decoder *dot11.Decoder, results chan<- log.Result,
	limit int, stop func(), zapl *zap.Logger) *frameProcessor {
	return &frameProcessor{ctx: ctx, decoder: decoder, results: results, limit: limit, stop: stop, zapl: zapl}
}

func (p *frameProcessor) ProcessPacketData(data []byte, _ *gopacket.CaptureInfo) error {
	if p.limit > 0 && p.count >= p.limit {
		return nil
	}
	frame, err := p.decoder.Decode(data)
	if err != nil {
		p.zapl.Debug("skip frame", zap.Error(err))
		return nil
	}
	select {
	case p.results <- frame:
	default:
		select {
		case <-p.ctx.Done():
			return nil
		case p.results <- frame:
		}
	}
	p.count++
	if p.limit > 0 && p.count >= p.limit {
		p.stop()
	}
	return nil
}
