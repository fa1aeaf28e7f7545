package addr

import (
	"encoding/hex"
	"log/slog"

	"github.com/soypat/rawpkt"
)

// IPv6 is an IPv6 address. It has no text form: use [net/netip] for that.
type IPv6 struct {
	octets [SizeIPv6]byte
}

// IPv6From returns the address with the given octets.
func IPv6From(octets [SizeIPv6]byte) IPv6 { return IPv6{octets: octets} }

// IPv6FromSlice returns the address held in b.
// It returns [rawpkt.ErrInvalidAddrLength] if len(b) is not 16.
func IPv6FromSlice(b []byte) (IPv6, error) {
	if len(b) != SizeIPv6 {
		return IPv6{}, rawpkt.ErrInvalidAddrLength
	}
	return IPv6{octets: [SizeIPv6]byte(b)}, nil
}

// As16 returns a copy of the address octets.
func (a IPv6) As16() [SizeIPv6]byte { return a.octets }

// LogValue implements [slog.LogValuer]. The address is logged as 32 hex digits.
func (a IPv6) LogValue() slog.Value { return slog.StringValue(hex.EncodeToString(a.octets[:])) }

// IPv6Bytes converts an [IPv6] to and from its 16 octets. It implements [rawpkt.Codec].
type IPv6Bytes struct{}

func (IPv6Bytes) From(b [SizeIPv6]byte) IPv6 { return IPv6From(b) }
func (IPv6Bytes) To(a IPv6) [SizeIPv6]byte   { return a.As16() }

var _ rawpkt.Codec[IPv6, [SizeIPv6]byte] = IPv6Bytes{}
