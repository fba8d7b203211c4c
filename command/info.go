//go:generate easyjson -output_filename info_easyjson.go info.go

package command

import (
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/spf13/cobra"
	"github.com/v-byte-cpu/wif/command/log"
	"github.com/v-byte-cpu/wif/pkg/osdep"
)

func newInfoCmd() *infoCmd {
	c := &infoCmd{}

	cmd := &cobra.Command{
		Use:     "info [flags]",
		Example: strings.Join([]string{"info", "info --json", "info --channel 6"}, "\n"),
		Short:   "Print radio parameters and capabilities of the wifi interface",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err = c.opts.parseRawOptions(); err != nil {
				return
			}
			wif := c.opts.openBackend()
			defer wif.Close()
			return c.opts.printInfo(wif, cmd.OutOrStdout())
		},
	}

	c.opts.initCliFlags(cmd)

	c.cmd = cmd
	return c
}

type infoCmd struct {
	cmd  *cobra.Command
	opts infoCmdOpts
}

type infoCmdOpts struct {
	backendCmdOpts
	json    bool
	channel int
	mac     net.HardwareAddr

	rawMAC string
}

func (o *infoCmdOpts) initCliFlags(cmd *cobra.Command) {
	o.backendCmdOpts.initCliFlags(cmd)
	cmd.Flags().BoolVar(&o.json, "json", false, "enable JSON output")
	cmd.Flags().IntVar(&o.channel, "channel", 0, "set channel before reporting")
	cmd.Flags().StringVar(&o.rawMAC, "mac", "", "set MAC address before reporting")
}

func (o *infoCmdOpts) parseRawOptions() (err error) {
	if err = o.backendCmdOpts.parseRawOptions(); err != nil {
		return
	}
	if len(o.rawMAC) > 0 {
		if o.mac, err = net.ParseMAC(o.rawMAC); err != nil {
			return
		}
	}
	return
}

func (o *infoCmdOpts) printInfo(wif osdep.Wif, w io.Writer) (err error) {
	if o.channel > 0 {
		if err = wif.SetChannel(o.channel); err != nil {
			return
		}
	}
	if o.mac != nil {
		if err = wif.SetMAC(o.mac); err != nil {
			return
		}
	}
	var rw log.ResultWriter = &log.PlainResultWriter{}
	if o.json {
		rw = &log.JSONResultWriter{}
	}
	return rw.Write(w, newInfoResult(o.rawInterface, wif))
}

//easyjson:json
type InfoResult struct {
	Interface    string `json:"interface,omitempty"`
	Channel      int    `json:"channel"`
	Freq         int    `json:"freq"`
	Rate         int    `json:"rate"`
	MTU          int    `json:"mtu"`
	MAC          string `json:"mac"`
	Monitor      bool   `json:"monitor"`
	Fd           int    `json:"fd"`
	Battery      int    `json:"battery"`
	BatteryError string `json:"battery_error,omitempty"`
	Tap          int    `json:"tap"`
	TapError     string `json:"tap_error,omitempty"`
}

func newInfoResult(ifname string, wif osdep.Wif) *InfoResult {
	result := &InfoResult{
		Interface: ifname,
		Channel:   wif.Channel(),
		Freq:      wif.Freq(),
		Rate:      wif.Rate(),
		MTU:       wif.MTU(),
		Monitor:   wif.Monitor(),
		Fd:        wif.Fd(),
	}
	mac := make(net.HardwareAddr, 6)
	if err := wif.MAC(mac); err == nil {
		result.MAC = mac.String()
	}
	var err error
	if result.Battery, err = osdep.BatteryState(); err != nil {
		result.BatteryError = err.Error()
	}
	if result.Tap, err = osdep.CreateTap(); err != nil {
		result.TapError = err.Error()
	}
	return result
}

func (r *InfoResult) ID() string {
	return r.Interface
}

func (r *InfoResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "interface: %s\n", r.Interface)
	fmt.Fprintf(&sb, "channel:   %d\n", r.Channel)
	fmt.Fprintf(&sb, "freq:      %d\n", r.Freq)
	fmt.Fprintf(&sb, "rate:      %d\n", r.Rate)
	fmt.Fprintf(&sb, "mtu:       %d\n", r.MTU)
	fmt.Fprintf(&sb, "mac:       %s\n", r.MAC)
	fmt.Fprintf(&sb, "monitor:   %t\n", r.Monitor)
	fmt.Fprintf(&sb, "fd:        %d\n", r.Fd)
	fmt.Fprintf(&sb, "battery:   %s\n", outcome(r.Battery, r.BatteryError))
	fmt.Fprintf(&sb, "tap:       %s", outcome(r.Tap, r.TapError))
	return sb.String()
}

func outcome(value int, errMsg string) string {
	if len(errMsg) > 0 {
		return fmt.Sprintf("%d (%s)", value, errMsg)
	}
	return fmt.Sprint(value)
}
