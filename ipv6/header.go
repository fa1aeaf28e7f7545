package ipv6

import (
	"encoding/binary"

	"github.com/soypat/rawpkt"
)

// SizeHeader is the size of the fixed IPv6 header.
const SizeHeader = 40

// Header is the fixed IPv6 header. See [RFC8200].
//
// Field order and widths match the wire format exactly and the struct has no padding.
// VerClassFlow and PayloadLen hold raw field values, see [rawpkt.HostToNet32] and [VersionTrafficAndFlow].
//
// [RFC8200]: https://tools.ietf.org/html/rfc8200
type Header struct {
	VerClassFlow uint32   // 0:4 version(4 bits), traffic class(8 bits), flow label(20 bits).
	PayloadLen   uint16   // 4:6 payload size including extension headers.
	NextHeader   uint8    // 6 see [rawpkt.IPProto].
	HopLimit     uint8    // 7
	Src          [16]byte // 8:24
	Dst          [16]byte // 24:40
}

// HeaderFrom returns the header held in b.
func HeaderFrom(b [SizeHeader]byte) (h Header) {
	h.decode(b[:])
	return h
}

// Bytes returns the wire representation of the header.
func (h *Header) Bytes() (b [SizeHeader]byte) {
	h.put(b[:])
	return b
}

// Put writes the header into the first 40 bytes of dst.
func (h *Header) Put(dst []byte) error {
	if len(dst) < SizeHeader {
		return rawpkt.ErrShortBuffer
	}
	h.put(dst)
	return nil
}

// Decode copies the header fields from the first 40 bytes of src.
func (h *Header) Decode(src []byte) error {
	if len(src) < SizeHeader {
		return rawpkt.ErrShortBuffer
	}
	h.decode(src)
	return nil
}

// AppendBinary implements [encoding.BinaryAppender].
func (h *Header) AppendBinary(b []byte) ([]byte, error) {
	hdr := h.Bytes()
	return append(b, hdr[:]...), nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (h *Header) MarshalBinary() ([]byte, error) { return h.AppendBinary(make([]byte, 0, SizeHeader)) }

// UnmarshalBinary implements [encoding.BinaryUnmarshaler]. Bytes after the header are ignored.
func (h *Header) UnmarshalBinary(b []byte) error { return h.Decode(b) }

func (h *Header) put(b []byte) {
	_ = b[SizeHeader-1]
	binary.NativeEndian.PutUint32(b[0:4], h.VerClassFlow)
	binary.NativeEndian.PutUint16(b[4:6], h.PayloadLen)
	b[6] = h.NextHeader
	b[7] = h.HopLimit
	copy(b[8:24], h.Src[:])
	copy(b[24:40], h.Dst[:])
}

func (h *Header) decode(b []byte) {
	_ = b[SizeHeader-1]
	h.VerClassFlow = binary.NativeEndian.Uint32(b[0:4])
	h.PayloadLen = binary.NativeEndian.Uint16(b[4:6])
	h.NextHeader = b[6]
	h.HopLimit = b[7]
	h.Src = [16]byte(b[8:24])
	h.Dst = [16]byte(b[24:40])
}

// VersionTrafficAndFlow packs the version, traffic class and flow label into
// the host-order value of the first header word. Store it with [rawpkt.HostToNet32].
func VersionTrafficAndFlow(version uint8, tos ToS, flow uint32) uint32 {
	return flow&flowMask | uint32(tos)<<(32-12) | uint32(version)<<(32-4)
}

// SplitVersionTrafficAndFlow is the inverse of [VersionTrafficAndFlow]. v is a host-order value.
func SplitVersionTrafficAndFlow(v uint32) (version uint8, tos ToS, flow uint32) {
	return uint8(v >> (32 - 4)), ToS(v >> (32 - 12)), v & flowMask
}

const flowMask = 0x000f_ffff

// BytesCodec converts a [Header] to and from its wire bytes. It implements [rawpkt.Codec].
type BytesCodec struct{}

func (BytesCodec) From(b [SizeHeader]byte) Header { return HeaderFrom(b) }
func (BytesCodec) To(h Header) [SizeHeader]byte   { return h.Bytes() }

var _ rawpkt.Codec[Header, [SizeHeader]byte] = BytesCodec{}
