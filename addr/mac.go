package addr

import (
	"log/slog"
	"strconv"

	"github.com/soypat/rawpkt"
)

// MAC is a 6 octet hardware (EUI-48) address.
type MAC struct {
	octets [SizeMAC]byte
}

// MACFrom returns the hardware address with the given octets.
func MACFrom(octets [SizeMAC]byte) MAC { return MAC{octets: octets} }

// MACFromSlice returns the hardware address held in b.
// It returns [rawpkt.ErrInvalidAddrLength] if len(b) is not 6.
func MACFromSlice(b []byte) (MAC, error) {
	if len(b) != SizeMAC {
		return MAC{}, rawpkt.ErrInvalidAddrLength
	}
	return MAC{octets: [SizeMAC]byte(b)}, nil
}

// BroadcastMAC returns the all 0xff's broadcast hardware address.
func BroadcastMAC() MAC {
	return MAC{octets: [SizeMAC]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}}
}

// As6 returns a copy of the address octets.
func (m MAC) As6() [SizeMAC]byte { return m.octets }

// String returns the octets in lowercase hex separated by colons.
// Octets are not zero padded: 00:01:0f:10:ab:ff renders as "0:1:f:10:ab:ff".
func (m MAC) String() string {
	var buf [len("ff:ff:ff:ff:ff:ff")]byte
	return string(m.appendTo(buf[:0]))
}

// AppendText implements [encoding.TextAppender]. See [MAC.String].
func (m MAC) AppendText(b []byte) ([]byte, error) {
	return m.appendTo(b), nil
}

// LogValue implements [slog.LogValuer].
func (m MAC) LogValue() slog.Value { return slog.StringValue(m.String()) }

func (m MAC) appendTo(dst []byte) []byte {
	for i, b := range m.octets {
		if i != 0 {
			dst = append(dst, ':')
		}
		dst = strconv.AppendUint(dst, uint64(b), 16)
	}
	return dst
}

// MACBytes converts a [MAC] to and from its 6 octets. It implements [rawpkt.Codec].
type MACBytes struct{}

func (MACBytes) From(b [SizeMAC]byte) MAC { return MACFrom(b) }
func (MACBytes) To(m MAC) [SizeMAC]byte   { return m.As6() }

var _ rawpkt.Codec[MAC, [SizeMAC]byte] = MACBytes{}
