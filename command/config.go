package command

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/gopacket/layers"
	"github.com/spf13/cobra"
	"github.com/v-byte-cpu/wif/command/log"
	"github.com/v-byte-cpu/wif/pkg/dot11"
	"github.com/v-byte-cpu/wif/pkg/osdep"
	"github.com/v-byte-cpu/wif/pkg/packet"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultFlushInterval     = 1 * time.Second
	defaultLogFileMaxSizeMB  = 10
	defaultLogFileMaxBackups = 3
)

var (
	errRateLimit  = errors.New("invalid ratelimit")
	errHexFrame   = errors.New("invalid hex frame")
	errNoHexFrame = errors.New("requires one hex frame argument")
	errNoBSSID    = errors.New("bssid is required")
	errFrameType  = errors.New("invalid frame type, expected one of mgt, ctl, data")
	errLinkType   = errors.New("invalid link type, expected one of radiotap, dot11")
	errCount      = errors.New("invalid count")
	errSnapLen    = errors.New("invalid snaplen")
)

type backendCmdOpts struct {
	rawInterface string
	quiet        bool
	debug        bool
	strict       bool
	logFile      string

	zapl *zap.Logger
}

func (o *backendCmdOpts) initCliFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.rawInterface, "iface", "i", "",
		strings.Join([]string{"set wifi interface to capture/inject frames",
			"frames always go through the default capture device"}, "\n"))
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "disable diagnostic output of the capture backend")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail if a frame could not be injected")
	cmd.Flags().StringVar(&o.logFile, "log-file", "",
		strings.Join([]string{"set file to write JSON logs to",
			"backend diagnostics go there instead of stderr, the file is rotated"}, "\n"))
}

func (o *backendCmdOpts) parseRawOptions() (err error) {
	o.zapl = log.NewZapLogger(&log.ZapConfig{
		Debug:      o.debug,
		File:       o.logFile,
		MaxSizeMB:  defaultLogFileMaxSizeMB,
		MaxBackups: defaultLogFileMaxBackups,
	})
	return
}

func (o *backendCmdOpts) getZapLogger() *zap.Logger {
	if o.zapl == nil {
		return zap.NewNop()
	}
	return o.zapl
}

func (o *backendCmdOpts) newEmitter() osdep.Emitter {
	switch {
	case o.quiet:
		return osdep.NopEmitter
	case len(o.logFile) > 0:
		return osdep.NewZapEmitter(o.getZapLogger())
	default:
		return osdep.NewWriterEmitter(os.Stderr)
	}
}

func (o *backendCmdOpts) openBackend() osdep.Wif {
	opts := []osdep.Option{osdep.WithEmitter(o.newEmitter())}
	if o.strict {
		opts = append(opts, osdep.WithStrictWrite())
	}
	return osdep.Open(o.rawInterface, opts...)
}

func (o *backendCmdOpts) getLogger(name string, w io.Writer, json bool) (logger log.Logger, err error) {
	opts := []log.LoggerOption{log.FlushInterval(defaultFlushInterval), log.WithZap(o.getZapLogger())}
	if json {
		opts = append(opts, log.JSON())
	}
	logger, err = log.NewLogger(w, name, opts...)
	return
}

type injectCmdOpts struct {
	backendCmdOpts
	count      int
	rateCount  int
	rateWindow time.Duration

	rawRateLimit string
}

func (o *injectCmdOpts) initCliFlags(cmd *cobra.Command, defaultCount int) {
	o.backendCmdOpts.initCliFlags(cmd)
	cmd.Flags().IntVarP(&o.count, "count", "c", defaultCount,
		strings.Join([]string{"set number of frames to inject", "0 injects until interrupted"}, "\n"))
	cmd.Flags().StringVarP(&o.rawRateLimit, "rate", "r", "",
		strings.Join([]string{
			"set rate limit for injected frames",
			`format: "rateCount/rateWindow"`,
			"where rateCount is a number of frames, rateWindow is the time interval",
			"e.g. 10/s -- 10 frames per second", "500/7s -- 500 frames per 7 seconds\n"}, "\n"))
}

func (o *injectCmdOpts) parseRawOptions() (err error) {
	if err = o.backendCmdOpts.parseRawOptions(); err != nil {
		return
	}
	if o.count < 0 {
		return errCount
	}
	if len(o.rawRateLimit) > 0 {
		if o.rateCount, o.rateWindow, err = parseRateLimit(o.rawRateLimit); err != nil {
			return
		}
	}
	return
}

func (o *injectCmdOpts) newReadWriter(wif osdep.Wif) packet.ReadWriter {
	rw := packet.NewSyncReadWriter(packet.NewSource(wif, 0))
	if o.rateCount > 0 {
		rw = packet.NewThrottledReadWriter(rw, ratelimit.New(o.rateCount, ratelimit.Per(o.rateWindow)))
	}
	return rw
}

// injectFrames sends frames of filler until all of them are sent.
func (o *injectCmdOpts) injectFrames(ctx context.Context, name string,
	w packet.Writer, filler dot11.FrameFiller) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	zapl := o.getZapLogger()
	frames := dot11.NewFrameGenerator(filler).Frames(ctx, o.count)
	done, errc := packet.NewEngine(packet.NewSender(w), nil).Start(ctx, frames)
	go func() {
		defer cancel()
		<-done
	}()

	var sent error
	for e := range errc {
		zapl.Error(name, zap.Error(e))
		if sent == nil && errors.Is(e, osdep.ErrInjectionFailed) {
			sent = e
		}
		if packet.IsFatalError(e) {
			return e
		}
	}
	if o.strict {
		return sent
	}
	return nil
}

func parseRateLimit(rateLimit string) (rateCount int, rateWindow time.Duration, err error) {
	parts := strings.Split(rateLimit, "/")
	if len(parts) > 2 {
		return 0, 0, errRateLimit
	}
	var rate int64
	if rate, err = strconv.ParseInt(parts[0], 10, 32); err != nil || rate < 0 {
		return 0, 0, errRateLimit
	}
	rateCount = int(rate)
	rateWindow = 1 * time.Second
	if len(parts) < 2 {
		return
	}
	win := parts[1]
	if len(win) > 0 && (win[0] < '0' || win[0] > '9') {
		win = "1" + win
	}
	if rateWindow, err = time.ParseDuration(win); err != nil || rateWindow < 0 {
		return 0, 0, errRateLimit
	}
	return
}

// parseHexFrame accepts hex bytes optionally separated by colons or spaces.
func parseHexFrame(input string) (frame []byte, err error) {
	input = strings.NewReplacer(":", "", " ", "", "\n", "").Replace(input)
	input = strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X")
	if len(input) == 0 {
		return nil, errHexFrame
	}
	if frame, err = hex.DecodeString(input); err != nil {
		return nil, errHexFrame
	}
	return
}

func parseFrameType(frameType string) (string, error) {
	switch frameType {
	case "", "mgt", "ctl", "data":
		return frameType, nil
	default:
		return "", errFrameType
	}
}

func parseLinkType(linkType string) (layers.LinkType, error) {
	switch linkType {
	case "", "radiotap":
		return layers.LinkTypeIEEE80211Radio, nil
	case "dot11":
		return layers.LinkTypeIEEE802_11, nil
	default:
		return 0, errLinkType
	}
}
