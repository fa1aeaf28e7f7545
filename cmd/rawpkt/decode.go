package main

import (
	"fmt"
	"io"
	"net/netip"

	"github.com/soypat/rawpkt"
	"github.com/soypat/rawpkt/addr"
	"github.com/soypat/rawpkt/arp"
	"github.com/soypat/rawpkt/ethernet"
	"github.com/soypat/rawpkt/ipv4"
	"github.com/soypat/rawpkt/ipv4/icmpv4"
	"github.com/soypat/rawpkt/ipv6"
	"github.com/spf13/cobra"
)

func (a *app) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode HEX",
		Short: "Decode a hex encoded Ethernet frame",
		Long:  "Decodes the Ethernet header and the ARP, IPv4 (and ICMP) or IPv6 header behind it, one line per header.",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runDecode,
	}
}

func (a *app) runDecode(cmd *cobra.Command, args []string) error {
	frame, err := parseHex(args[0])
	if err != nil {
		return err
	}
	return decodeFrame(a.out, frame)
}

// decodeFrame writes one line per recognized header in frame to w. Decoding
// stops without error at the first payload it does not know how to interpret.
func decodeFrame(w io.Writer, frame []byte) error {
	var ehdr ethernet.Header
	if err := ehdr.Decode(frame); err != nil {
		return fmt.Errorf("ethernet: %w", err)
	}
	_, err := fmt.Fprintf(w, "ethernet dst=%s src=%s type=%s\n",
		addr.MACFrom(ehdr.Dest), addr.MACFrom(ehdr.Source), ehdr.EtherType())
	if err != nil {
		return err
	}
	payload := frame[ethernet.SizeHeader:]

	switch ehdr.EtherType() {
	case ethernet.TypeARP:
		var ahdr arp.Header
		if err := ahdr.Decode(payload); err != nil {
			return fmt.Errorf("arp: %w", err)
		}
		_, err = fmt.Fprintf(w, "arp op=%s sender=%s sender-ip=%s target=%s target-ip=%s\n",
			ahdr.Operation(),
			addr.MACFrom(ahdr.SenderMAC), addr.IPv4From(ahdr.SenderIP),
			addr.MACFrom(ahdr.TargetMAC), addr.IPv4From(ahdr.TargetIP))

	case ethernet.TypeIPv4:
		return decodeIPv4(w, payload)

	case ethernet.TypeIPv6:
		var ihdr ipv6.Header
		if err := ihdr.Decode(payload); err != nil {
			return fmt.Errorf("ipv6: %w", err)
		}
		version, tos, flow := ipv6.SplitVersionTrafficAndFlow(rawpkt.NetToHost32(ihdr.VerClassFlow))
		// IPv6 addresses have no text form of their own; net/netip supplies one for display.
		_, err = fmt.Fprintf(w, "ipv6 version=%d ds=%d ecn=%d flow=0x%05x len=%d next=%d hop=%d src=%s dst=%s\n",
			version, tos.DS(), tos.ECN(), flow, rawpkt.NetToHost16(ihdr.PayloadLen),
			ihdr.NextHeader, ihdr.HopLimit, netip.AddrFrom16(ihdr.Src), netip.AddrFrom16(ihdr.Dst))
	}
	return err
}

func decodeIPv4(w io.Writer, b []byte) error {
	var ihdr ipv4.Header
	if err := ihdr.Decode(b); err != nil {
		return fmt.Errorf("ipv4: %w", err)
	}
	version, ihl := ihdr.VersionAndIHL()
	flags := ihdr.Flags()
	totalLen := int(rawpkt.NetToHost16(ihdr.TotalLen))
	_, err := fmt.Fprintf(w, "ipv4 version=%d ihl=%d len=%d id=%d df=%t mf=%t frag=%d ttl=%d proto=%d src=%s dst=%s checksum=0x%04x valid=%t\n",
		version, ihl, totalLen, rawpkt.NetToHost16(ihdr.ID),
		flags.DontFragment(), flags.MoreFragments(), flags.FragmentOffset(),
		ihdr.TTL, ihdr.Protocol, addr.IPv4From(ihdr.Src), addr.IPv4From(ihdr.Dst),
		rawpkt.NetToHost16(ihdr.Check), ihdr.ValidChecksum())
	if err != nil {
		return err
	}

	hl := ihdr.HeaderLength()
	if rawpkt.IPProto(ihdr.Protocol) != rawpkt.IPProtoICMP || hl < ipv4.SizeHeader || totalLen < hl || totalLen > len(b) {
		return nil
	}
	// Trailing Ethernet padding is not part of the ICMP message.
	msg := b[hl:totalLen]
	var chdr icmpv4.Header
	if err := chdr.Decode(msg); err != nil {
		return fmt.Errorf("icmp: %w", err)
	}
	data := msg[icmpv4.SizeHeader:]
	typ := icmpv4.Type(chdr.Type)
	_, err = fmt.Fprintf(w, "icmp type=%s code=%s id=%d seq=%d datalen=%d checksum=0x%04x valid=%t\n",
		typ, typ.CodeString(chdr.Code), rawpkt.NetToHost16(chdr.ID), rawpkt.NetToHost16(chdr.Seq),
		len(data), rawpkt.NetToHost16(chdr.Check), chdr.ValidChecksum(data))
	return err
}
