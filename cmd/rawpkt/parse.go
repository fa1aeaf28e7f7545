package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/soypat/rawpkt/addr"
)

var errMissing = errors.New("missing required value")

func parseMAC(key, s string) (addr.MAC, error) {
	if s == "" {
		return addr.MAC{}, fmt.Errorf("--%s: %w", key, errMissing)
	}
	hw, err := net.ParseMAC(s)
	if err != nil {
		return addr.MAC{}, fmt.Errorf("--%s: %w", key, err)
	}
	mac, err := addr.MACFromSlice(hw)
	if err != nil {
		// EUI-64 and InfiniBand addresses parse fine but do not fit Ethernet.
		return addr.MAC{}, fmt.Errorf("--%s %q: %w", key, s, err)
	}
	return mac, nil
}

func parseIPv4(key, s string) (addr.IPv4, error) {
	if s == "" {
		return addr.IPv4{}, fmt.Errorf("--%s: %w", key, errMissing)
	}
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return addr.IPv4{}, fmt.Errorf("--%s: %w", key, err)
	}
	if !ip.Is4() {
		return addr.IPv4{}, fmt.Errorf("--%s %q: not an IPv4 address", key, s)
	}
	return addr.IPv4From(ip.As4()), nil
}

// parseHex decodes hex text, ignoring whitespace and colon separators so
// output of tools like tcpdump -xx or Wireshark can be pasted directly.
func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding hex: %w", err)
	}
	return b, nil
}
