package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig lists the settings a config file may hold.
type fileConfig struct {
	LogLevel string `yaml:"log-level,omitempty" mapstructure:"log-level"`
	Pcap     string `yaml:"pcap,omitempty" mapstructure:"pcap"`
	SrcMAC   string `yaml:"src-mac,omitempty" mapstructure:"src-mac"`
	DstMAC   string `yaml:"dst-mac,omitempty" mapstructure:"dst-mac"`
	SrcIP    string `yaml:"src-ip,omitempty" mapstructure:"src-ip"`
	DstIP    string `yaml:"dst-ip,omitempty" mapstructure:"dst-ip"`
	TTL      uint8  `yaml:"ttl,omitempty" mapstructure:"ttl"`
	Pad      *bool  `yaml:"pad,omitempty" mapstructure:"pad"`
}

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the settings resolved from flags and the config file in the format
accepted by --config. The output can be saved and edited to create a config file.`,
		Args: cobra.NoArgs,
		RunE: a.runConfig,
	}
	flags := cmd.Flags()
	flags.String(keySrcMAC, "", "source hardware address")
	flags.String(keyDstMAC, "", "destination hardware address")
	flags.String(keySrcIP, "", "source IPv4 address")
	flags.String(keyDstIP, "", "destination IPv4 address")
	flags.Uint8(keyTTL, 64, "IPv4 time to live")
	flags.Bool(keyPad, true, "pad frame to the minimum Ethernet size")
	return cmd
}

func (a *app) runConfig(cmd *cobra.Command, args []string) error {
	var cfg fileConfig
	if err := a.v.Unmarshal(&cfg); err != nil {
		return err
	}
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return err
	}
	return enc.Close()
}
