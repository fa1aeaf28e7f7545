package main

import (
	"fmt"
	"log/slog"

	"github.com/soypat/rawpkt/addr"
	"github.com/soypat/rawpkt/arp"
	"github.com/soypat/rawpkt/ethernet"
	"github.com/spf13/cobra"
)

func (a *app) newARPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arp",
		Short: "Craft an Ethernet frame carrying an ARP request or reply",
		Example: `  rawpkt arp --src-mac c0:ff:ee:00:de:ad --src-ip 192.168.1.1 --dst-ip 192.168.1.2
  rawpkt arp --op reply --src-mac c0:ff:ee:00:de:ad --src-ip 192.168.1.1 \
    --dst-mac 02:00:00:00:00:01 --dst-ip 192.168.1.2`,
		Args: cobra.NoArgs,
		RunE: a.runARP,
	}
	flags := cmd.Flags()
	flags.String(keySrcMAC, "", "sender hardware address")
	flags.String(keySrcIP, "", "sender IPv4 address")
	flags.String(keyDstMAC, "", "target hardware address (broadcast request if empty)")
	flags.String(keyDstIP, "", "target IPv4 address")
	flags.String(keyOp, "request", "ARP operation: request or reply")
	flags.Bool(keyPad, true, "pad frame to the minimum Ethernet size")
	return cmd
}

func (a *app) runARP(cmd *cobra.Command, args []string) error {
	op, err := parseOperation(a.v.GetString(keyOp))
	if err != nil {
		return err
	}
	srcMAC, err := parseMAC(keySrcMAC, a.v.GetString(keySrcMAC))
	if err != nil {
		return err
	}
	srcIP, err := parseIPv4(keySrcIP, a.v.GetString(keySrcIP))
	if err != nil {
		return err
	}
	dstIP, err := parseIPv4(keyDstIP, a.v.GetString(keyDstIP))
	if err != nil {
		return err
	}
	var dstMAC addr.MAC
	if s := a.v.GetString(keyDstMAC); s != "" {
		dstMAC, err = parseMAC(keyDstMAC, s)
		if err != nil {
			return err
		}
	} else if op == arp.OpReply {
		return fmt.Errorf("--%s: %w for ARP reply", keyDstMAC, errMissing)
	}

	frame := buildARP(op, srcMAC, srcIP, dstMAC, dstIP)
	if a.v.GetBool(keyPad) {
		frame = padFrame(frame)
	}
	a.logger.Debug("crafted arp",
		slog.String("op", op.String()),
		slog.Any("sender", srcMAC), slog.Any("sender-ip", srcIP),
		slog.Any("target", dstMAC), slog.Any("target-ip", dstIP),
		slog.Int("len", len(frame)),
	)
	return a.emit(frame)
}

// buildARP returns an Ethernet+ARP frame. A zero dstMAC produces a broadcast
// frame with an all-zero target hardware address.
func buildARP(op arp.Operation, srcMAC addr.MAC, srcIP addr.IPv4, dstMAC addr.MAC, dstIP addr.IPv4) []byte {
	ehdr := ethernet.Header{Dest: dstMAC.As6(), Source: srcMAC.As6()}
	if dstMAC == (addr.MAC{}) {
		ehdr.Dest = ethernet.BroadcastAddr()
	}
	ehdr.SetEtherType(ethernet.TypeARP)

	var ahdr arp.Header
	ahdr.SetEthernetIPv4()
	ahdr.SetOperation(op)
	ahdr.SenderMAC = srcMAC.As6()
	ahdr.SenderIP = srcIP.As4()
	ahdr.TargetMAC = dstMAC.As6()
	ahdr.TargetIP = dstIP.As4()

	frame := make([]byte, 0, ethernet.SizeHeader+ethernet.MinPayload)
	frame, _ = ehdr.AppendBinary(frame)
	frame, _ = ahdr.AppendBinary(frame)
	return frame
}

func parseOperation(s string) (arp.Operation, error) {
	switch s {
	case "request":
		return arp.OpRequest, nil
	case "reply":
		return arp.OpReply, nil
	}
	return 0, fmt.Errorf("--%s: unknown ARP operation %q", keyOp, s)
}
