package addr

import (
	"encoding/binary"
	"log/slog"
	"strconv"

	"github.com/soypat/rawpkt"
)

// IPv4 is an IPv4 address. The zero value is 0.0.0.0.
// IPv4 values are comparable and equal when their octets are equal.
type IPv4 struct {
	octets [SizeIPv4]byte
}

// IPv4From returns the address with the given octets.
func IPv4From(octets [SizeIPv4]byte) IPv4 { return IPv4{octets: octets} }

// IPv4FromUint32 returns the address whose first octet is the most significant byte of v.
func IPv4FromUint32(v uint32) IPv4 {
	var a IPv4
	binary.BigEndian.PutUint32(a.octets[:], v)
	return a
}

// IPv4FromSlice returns the address held in b, typically a slice of a received packet.
// It returns [rawpkt.ErrInvalidAddrLength] if len(b) is not 4.
func IPv4FromSlice(b []byte) (IPv4, error) {
	if len(b) != SizeIPv4 {
		return IPv4{}, rawpkt.ErrInvalidAddrLength
	}
	return IPv4{octets: [SizeIPv4]byte(b)}, nil
}

// As4 returns a copy of the address octets.
func (a IPv4) As4() [SizeIPv4]byte { return a.octets }

// Uint32 returns the address as a number, first octet in the most significant byte.
// 192.168.1.1 is 0xc0a80101.
func (a IPv4) Uint32() uint32 { return binary.BigEndian.Uint32(a.octets[:]) }

// String returns the dotted decimal form of the address, i.e: "192.168.1.1".
func (a IPv4) String() string {
	var buf [len("255.255.255.255")]byte
	return string(a.appendTo(buf[:0]))
}

// AppendText implements [encoding.TextAppender].
func (a IPv4) AppendText(b []byte) ([]byte, error) {
	return a.appendTo(b), nil
}

// LogValue implements [slog.LogValuer].
func (a IPv4) LogValue() slog.Value { return slog.StringValue(a.String()) }

func (a IPv4) appendTo(dst []byte) []byte {
	for i, b := range a.octets {
		if i != 0 {
			dst = append(dst, '.')
		}
		dst = strconv.AppendUint(dst, uint64(b), 10)
	}
	return dst
}

// IPv4Bytes converts an [IPv4] to and from its 4 octets. It implements [rawpkt.Codec].
type IPv4Bytes struct{}

func (IPv4Bytes) From(b [SizeIPv4]byte) IPv4 { return IPv4From(b) }
func (IPv4Bytes) To(a IPv4) [SizeIPv4]byte   { return a.As4() }

// IPv4Uint32 converts an [IPv4] to and from its big endian uint32 form. It implements [rawpkt.Codec].
type IPv4Uint32 struct{}

func (IPv4Uint32) From(v uint32) IPv4 { return IPv4FromUint32(v) }
func (IPv4Uint32) To(a IPv4) uint32   { return a.Uint32() }

var (
	_ rawpkt.Codec[IPv4, [SizeIPv4]byte] = IPv4Bytes{}
	_ rawpkt.Codec[IPv4, uint32]         = IPv4Uint32{}
)
