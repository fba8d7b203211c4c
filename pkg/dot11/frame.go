//go:generate easyjson -output_filename frame_easyjson.go frame.go

package dot11

import (
	"errors"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/macs"
)

var (
	ErrLinkType = errors.New("unsupported link type")
	ErrNoDot11  = errors.New("not an 802.11 frame")
)

//easyjson:json
type Frame struct {
	Type   string `json:"type"`
	Dst    string `json:"dst,omitempty"`
	Src    string `json:"src,omitempty"`
	BSSID  string `json:"bssid,omitempty"`
	Vendor string `json:"vendor,omitempty"`
	Length int    `json:"length"`
	Signal int8   `json:"signal,omitempty"`
	Freq   uint16 `json:"freq,omitempty"`
}

// ID identifies the transmitter of a frame type within a BSS.
func (f *Frame) ID() string {
	return f.Type + "/" + f.Src + "/" + f.BSSID
}

func (f *Frame) String() string {
	return fmt.Sprintf("%-24s %-18s %-18s %-18s %5d %4d %s",
		f.Type, f.Src, f.Dst, f.BSSID, f.Length, f.Signal, f.Vendor)
}

// Decoder is not safe for concurrent use.
type Decoder struct {
	parser *gopacket.DecodingLayerParser

	decoded   []gopacket.LayerType
	radioTap  layers.RadioTap
	dot11     layers.Dot11
	macPrefix [3]byte
}

// NewDecoder creates a Decoder of frames with linkType:
// either IEEE 802.11 with a radiotap header or plain IEEE 802.11.
func NewDecoder(linkType layers.LinkType) (*Decoder, error) {
	d := &Decoder{}
	var first gopacket.LayerType
	switch linkType {
	case layers.LinkTypeIEEE80211Radio:
		first = layers.LayerTypeRadioTap
	case layers.LinkTypeIEEE802_11:
		first = layers.LayerTypeDot11
	default:
		return nil, fmt.Errorf("%w: %v", ErrLinkType, linkType)
	}
	parser := gopacket.NewDecodingLayerParser(first, &d.radioTap, &d.dot11)
	parser.IgnoreUnsupported = true
	d.parser = parser
	return d, nil
}

func (d *Decoder) Decode(data []byte) (*Frame, error) {
	// control frames leave unused addresses untouched
	d.radioTap = layers.RadioTap{}
	d.dot11 = layers.Dot11{}
	if err := d.parser.DecodeLayers(data, &d.decoded); err != nil {
		return nil, err
	}
	frame := &Frame{Length: len(data)}
	var hasDot11 bool
	for _, layerType := range d.decoded {
		switch layerType {
		case layers.LayerTypeRadioTap:
			if d.radioTap.Present.DBMAntennaSignal() {
				frame.Signal = d.radioTap.DBMAntennaSignal
			}
			if d.radioTap.Present.Channel() {
				frame.Freq = uint16(d.radioTap.ChannelFrequency)
			}
		case layers.LayerTypeDot11:
			hasDot11 = true
		}
	}
	if !hasDot11 {
		return nil, ErrNoDot11
	}
	frame.Type = d.dot11.Type.String()
	frame.Dst = macString(d.dot11.Address1)
	frame.Src = macString(d.dot11.Address2)
	frame.BSSID = macString(d.dot11.Address3)
	if len(d.dot11.Address2) >= 3 {
		copy(d.macPrefix[:], d.dot11.Address2[:3])
		frame.Vendor = macs.ValidMACPrefixMap[d.macPrefix]
	}
	return frame, nil
}

func macString(addr net.HardwareAddr) string {
	if len(addr) == 0 {
		return ""
	}
	return addr.String()
}
