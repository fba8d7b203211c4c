package osdep

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
	"github.com/v-byte-cpu/wif/pkg/ip"
)

type pcapCapture struct{}

// Assert that pcapCapture conforms to the Capture interface
var _ Capture = (*pcapCapture)(nil)

// NewPcapCapture returns the Capture backed by libpcap.
func NewPcapCapture() Capture {
	return &pcapCapture{}
}

// LookupDev picks the first device that is not a loopback,
// the same way pcap_lookupdev(3) does.
func (*pcapCapture) LookupDev() (string, error) {
	devs, err := pcap.FindAllDevs()
	if err != nil {
		return "", err
	}
	for _, dev := range devs {
		if !isLoopback(dev) {
			return dev.Name, nil
		}
	}
	return "", errors.New("no suitable device found")
}

func isLoopback(dev pcap.Interface) bool {
	for _, addr := range dev.Addresses {
		if addr.IP.IsLoopback() {
			return true
		}
	}
	return ip.IsLoopbackInterface(dev.Name)
}

func (*pcapCapture) LookupNet(device string) (network, mask uint32, err error) {
	devs, err := pcap.FindAllDevs()
	if err != nil {
		return
	}
	for _, dev := range devs {
		if dev.Name != device {
			continue
		}
		nets := make([]net.IPNet, 0, len(dev.Addresses))
		for _, addr := range dev.Addresses {
			nets = append(nets, net.IPNet{IP: addr.IP, Mask: addr.Netmask})
		}
		return ip.IPv4Network(nets)
	}
	return 0, 0, fmt.Errorf("no such device %s", device)
}

func (*pcapCapture) NewInactive(device string) (InactiveSession, error) {
	h, err := pcap.NewInactiveHandle(device)
	if err != nil {
		return nil, err
	}
	return &pcapInactive{h}, nil
}

func (*pcapCapture) OpenLive(device string, snaplen int32, promisc bool, timeout time.Duration) (Session, error) {
	h, err := pcap.OpenLive(device, snaplen, promisc, timeout)
	if err != nil {
		return nil, err
	}
	return &pcapSession{h}, nil
}

type pcapInactive struct {
	*pcap.InactiveHandle
}

func (h *pcapInactive) SetRFMon(monitor bool) error {
	err := h.InactiveHandle.SetRFMon(monitor)
	if errors.Is(err, pcap.CannotSetRFMon) {
		return ErrMonitorModeUnsupported
	}
	return err
}

func (h *pcapInactive) Activate() (Session, error) {
	handle, err := h.InactiveHandle.Activate()
	if err != nil {
		return nil, err
	}
	return &pcapSession{handle}, nil
}

type pcapSession struct {
	*pcap.Handle
}

func (s *pcapSession) ReadPacketData() ([]byte, gopacket.CaptureInfo, error) {
	data, ci, err := s.Handle.ReadPacketData()
	if errors.Is(err, pcap.NextErrorTimeoutExpired) {
		err = ErrNoFrame
	}
	return data, ci, err
}
