package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Flags share the same names so config files and flags are interchangeable.
const (
	keyConfig   = "config"
	keyPcap     = "pcap"
	keyLogLevel = "log-level"
	keySrcMAC   = "src-mac"
	keyDstMAC   = "dst-mac"
	keySrcIP    = "src-ip"
	keyDstIP    = "dst-ip"
	keyOp       = "op"
	keyPad      = "pad"
	keyID       = "id"
	keySeq      = "seq"
	keyTTL      = "ttl"
	keyPayload  = "payload"
)

// app holds state shared by all subcommands of a single invocation.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.DiscardHandler),
		out:    out,
		errOut: errOut,
	}
	root := &cobra.Command{
		Use:   "rawpkt",
		Short: "Craft and decode raw Ethernet, ARP, IPv4, ICMP and IPv6 packets",
		Long: `rawpkt builds byte-exact network frames and prints them as hex.

Frames can also be written to a pcap file for inspection with tcpdump or Wireshark.
Defaults for addresses may be read from a YAML config file whose keys match the flag names.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetGlobalNormalizationFunc(normalizeFlag)
	root.PersistentFlags().String(keyConfig, "", "YAML config file with flag defaults")
	root.PersistentFlags().String(keyPcap, "", "also write crafted frames to this pcap file")
	root.PersistentFlags().String(keyLogLevel, "warn", "log level: debug, info, warn or error")

	root.AddCommand(a.newARPCmd())
	root.AddCommand(a.newICMPCmd())
	root.AddCommand(a.newChecksumCmd())
	root.AddCommand(a.newDecodeCmd())
	root.AddCommand(a.newConfigCmd())
	return root
}

// setup loads the configuration file, binds the flags of the command being run
// and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if cfg := a.v.GetString(keyConfig); cfg != "" {
		a.v.SetConfigFile(cfg)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	level, err := parseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	a.logger.Debug("config loaded", slog.String("file", a.v.ConfigFileUsed()), slog.String("cmd", cmd.Name()))
	return nil
}

// normalizeFlag accepts underscores in place of dashes so --src_mac and
// --src-mac name the same flag.
func normalizeFlag(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
