package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/soypat/rawpkt/ethernet"
)

const pcapSnaplen = 65536

// padFrame extends frame with zeros so the payload after the Ethernet header
// reaches the minimum Ethernet payload size.
func padFrame(frame []byte) []byte {
	const minFrame = ethernet.SizeHeader + ethernet.MinPayload
	for len(frame) < minFrame {
		frame = append(frame, 0)
	}
	return frame
}

// emit prints frame as hex on the command output and, if configured, writes
// it as a single-packet pcap file.
func (a *app) emit(frame []byte) error {
	if _, err := fmt.Fprintln(a.out, hex.EncodeToString(frame)); err != nil {
		return err
	}
	path := a.v.GetString(keyPcap)
	if path == "" {
		return nil
	}
	if err := writePcap(path, frame, time.Now()); err != nil {
		return fmt.Errorf("writing pcap: %w", err)
	}
	a.logger.Info("wrote pcap", slog.String("file", path), slog.Int("len", len(frame)))
	return nil
}

func writePcap(path string, frame []byte, ts time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := pcapgo.NewWriter(f)
	err = w.WriteFileHeader(pcapSnaplen, layers.LinkTypeEthernet)
	if err == nil {
		err = w.WritePacket(gopacket.CaptureInfo{
			Timestamp:     ts,
			CaptureLength: len(frame),
			Length:        len(frame),
		}, frame)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
