// Command rawpkt crafts and decodes raw Ethernet frames carrying ARP, IPv4/ICMP
// and IPv6 headers. Crafted frames are printed as hex and optionally written to
// a pcap file; nothing is sent on the network.
package main

import (
	"os"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
