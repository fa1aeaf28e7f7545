package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/soypat/rawpkt"
	"github.com/soypat/rawpkt/addr"
	"github.com/soypat/rawpkt/ethernet"
	"github.com/soypat/rawpkt/ipv4"
	"github.com/soypat/rawpkt/ipv4/icmpv4"
	"github.com/spf13/cobra"
)

const maxICMPPayload = 0xffff - ipv4.SizeHeader - icmpv4.SizeHeader

var errPayloadTooLarge = errors.New("payload exceeds IPv4 datagram size")

// echoRequest describes an ICMP echo request between two Ethernet endpoints.
type echoRequest struct {
	SrcMAC, DstMAC addr.MAC
	SrcIP, DstIP   addr.IPv4
	ID, Seq        uint16
	IPID           uint16
	TTL            uint8
	Payload        []byte
}

func (a *app) newICMPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icmp",
		Short: "Craft an Ethernet frame carrying an IPv4 ICMP echo request",
		Example: `  rawpkt icmp --src-mac c0:ff:ee:00:de:ad --dst-mac 02:00:00:00:00:01 \
    --src-ip 192.168.1.1 --dst-ip 192.168.1.2 --id 1 --seq 2 --payload 6869`,
		Args: cobra.NoArgs,
		RunE: a.runICMP,
	}
	flags := cmd.Flags()
	flags.String(keySrcMAC, "", "source hardware address")
	flags.String(keyDstMAC, "", "destination hardware address")
	flags.String(keySrcIP, "", "source IPv4 address")
	flags.String(keyDstIP, "", "destination IPv4 address")
	flags.Uint16(keyID, 0, "echo identifier, also used as the IPv4 identification")
	flags.Uint16(keySeq, 0, "echo sequence number")
	flags.Uint8(keyTTL, 64, "IPv4 time to live")
	flags.String(keyPayload, "", "echo data as hex")
	flags.Bool(keyPad, true, "pad frame to the minimum Ethernet size")
	return cmd
}

func (a *app) runICMP(cmd *cobra.Command, args []string) (err error) {
	var req echoRequest
	if req.SrcMAC, err = parseMAC(keySrcMAC, a.v.GetString(keySrcMAC)); err != nil {
		return err
	}
	if req.DstMAC, err = parseMAC(keyDstMAC, a.v.GetString(keyDstMAC)); err != nil {
		return err
	}
	if req.SrcIP, err = parseIPv4(keySrcIP, a.v.GetString(keySrcIP)); err != nil {
		return err
	}
	if req.DstIP, err = parseIPv4(keyDstIP, a.v.GetString(keyDstIP)); err != nil {
		return err
	}
	if req.Payload, err = parseHex(a.v.GetString(keyPayload)); err != nil {
		return fmt.Errorf("--%s: %w", keyPayload, err)
	}
	if req.ID, err = a.uint16Value(keyID); err != nil {
		return err
	}
	if req.Seq, err = a.uint16Value(keySeq); err != nil {
		return err
	}
	ttl, err := a.uint16Value(keyTTL)
	if err != nil {
		return err
	} else if ttl > 0xff {
		return fmt.Errorf("--%s: %d out of range", keyTTL, ttl)
	}
	req.IPID = req.ID
	req.TTL = uint8(ttl)

	frame, err := req.build()
	if err != nil {
		return err
	}
	if a.v.GetBool(keyPad) {
		frame = padFrame(frame)
	}
	a.logger.Debug("crafted icmp echo",
		slog.Any("src", req.SrcIP), slog.Any("dst", req.DstIP),
		slog.Int("id", int(req.ID)), slog.Int("seq", int(req.Seq)),
		slog.Int("datalen", len(req.Payload)), slog.Int("len", len(frame)),
	)
	return a.emit(frame)
}

// uint16Value reads a key that may come from a flag or the config file. Config
// values are not range checked by pflag so the check is done here.
func (a *app) uint16Value(key string) (uint16, error) {
	v := a.v.GetUint(key)
	if v > 0xffff {
		return 0, fmt.Errorf("--%s: %d out of range", key, v)
	}
	return uint16(v), nil
}

// build returns the Ethernet+IPv4+ICMP frame with both checksums filled in.
func (req *echoRequest) build() ([]byte, error) {
	if len(req.Payload) > maxICMPPayload {
		return nil, errPayloadTooLarge
	}
	ehdr := ethernet.Header{Dest: req.DstMAC.As6(), Source: req.SrcMAC.As6()}
	ehdr.SetEtherType(ethernet.TypeIPv4)

	ihdr := ipv4.Header{
		TotalLen: rawpkt.HostToNet16(uint16(ipv4.SizeHeader + icmpv4.SizeHeader + len(req.Payload))),
		ID:       rawpkt.HostToNet16(req.IPID),
		TTL:      req.TTL,
		Protocol: uint8(rawpkt.IPProtoICMP),
		Src:      req.SrcIP.As4(),
		Dst:      req.DstIP.As4(),
	}
	ihdr.SetVersionAndIHL(4, 5)
	ihdr.SetFlags(ipv4.FlagDontFragment)
	ihdr.SetChecksum()

	chdr := icmpv4.Header{
		Type: uint8(icmpv4.TypeEcho),
		ID:   rawpkt.HostToNet16(req.ID),
		Seq:  rawpkt.HostToNet16(req.Seq),
	}
	chdr.SetChecksum(req.Payload)

	size := ethernet.SizeHeader + ipv4.SizeHeader + icmpv4.SizeHeader + len(req.Payload)
	frame := make([]byte, 0, max(size, ethernet.SizeHeader+ethernet.MinPayload))
	frame, _ = ehdr.AppendBinary(frame)
	frame, _ = ihdr.AppendBinary(frame)
	frame, _ = chdr.AppendBinary(frame)
	return append(frame, req.Payload...), nil
}
