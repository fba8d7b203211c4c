package ip

import (
	"encoding/binary"
	"errors"
	"net"
)

var ErrNoIPv4Addr = errors.New("no IPv4 address")

// IPv4Network returns the network number and mask of the first IPv4 subnet
// in host byte order, the same values pcap_lookupnet(3) reports.
func IPv4Network(nets []net.IPNet) (network, mask uint32, err error) {
	for _, n := range nets {
		ip4 := n.IP.To4()
		if ip4 == nil || len(n.Mask) == 0 {
			continue
		}
		m := n.Mask
		if len(m) == net.IPv6len {
			m = m[12:]
		}
		if len(m) != net.IPv4len {
			continue
		}
		mask = binary.BigEndian.Uint32(m)
		network = binary.BigEndian.Uint32(ip4) & mask
		return network, mask, nil
	}
	return 0, 0, ErrNoIPv4Addr
}

// IsLoopbackInterface reports whether the OS interface name is a loopback one.
// Unknown names are not loopback: capture devices like "any" have no OS interface.
func IsLoopbackInterface(name string) bool {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return false
	}
	return iface.Flags&net.FlagLoopback != 0
}
