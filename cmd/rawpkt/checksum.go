package main

import (
	"fmt"
	"log/slog"

	"github.com/soypat/rawpkt"
	"github.com/spf13/cobra"
)

func (a *app) newChecksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum HEX",
		Short: "Print the Internet checksum of hex encoded bytes",
		Long: `Computes the one's complement Internet checksum of the given bytes.

The result is printed as it would appear on the wire, so a header that already
carries a valid checksum yields 0x0000.`,
		Example: "  rawpkt checksum 4500003c1c4640004006b1e6ac100a63ac100a0c",
		Args:    cobra.ExactArgs(1),
		RunE:    a.runChecksum,
	}
}

func (a *app) runChecksum(cmd *cobra.Command, args []string) error {
	b, err := parseHex(args[0])
	if err != nil {
		return err
	}
	sum := rawpkt.Checksum(b)
	a.logger.Debug("checksum", slog.Int("len", len(b)), slog.Bool("valid", sum == 0))
	_, err = fmt.Fprintf(a.out, "0x%04x\n", rawpkt.NetToHost16(sum))
	return err
}
