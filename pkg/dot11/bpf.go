package dot11

import (
	"net"
	"strings"
)

// FilterOptions selects frames by 802.11 header fields.
type FilterOptions struct {
	// Type is one of "mgt", "ctl", "data"
	Type  string
	BSSID net.HardwareAddr
}

// BPFFilter builds a tcpdump filter expression for IEEE 802.11 link types.
func BPFFilter(opts *FilterOptions, extra string) string {
	var parts []string
	if len(opts.Type) > 0 {
		parts = append(parts, "type "+opts.Type)
	}
	if opts.BSSID != nil {
		parts = append(parts, "wlan addr3 "+opts.BSSID.String())
	}
	if len(extra) > 0 {
		parts = append(parts, "("+extra+")")
	}
	return strings.Join(parts, " and ")
}
