package ipv4

import (
	"encoding/binary"
	"fmt"

	"github.com/soypat/rawpkt"
)

// SizeHeader is the size of an IPv4 header without options.
const SizeHeader = 20

// Header is the fixed part of an IPv4 header. See [RFC791].
//
// Field order and widths match the wire format exactly and the struct has no padding.
// Multi-byte integer fields hold raw field values: TotalLen, ID and Frag must be
// translated with [rawpkt.HostToNet16] and [rawpkt.NetToHost16].
// Check is the exception, [Header.SetChecksum] stores a value ready for the wire.
//
// [RFC791]: https://tools.ietf.org/html/rfc791
type Header struct {
	VerIHL   uint8   // 0 version (high nibble) and header length in 32-bit words (low nibble).
	ToS      uint8   // 1 see [ToS].
	TotalLen uint16  // 2:4 header and data length in bytes.
	ID       uint16  // 4:6 fragment group identification.
	Frag     uint16  // 6:8 see [Flags].
	TTL      uint8   // 8
	Protocol uint8   // 9 see [rawpkt.IPProto].
	Check    uint16  // 10:12 header checksum.
	Src      [4]byte // 12:16
	Dst      [4]byte // 16:20
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

// Put writes the header into the first 20 bytes of dst. Options are not written.
func (h *Header) Put(dst []byte) error {
	if len(dst) < SizeHeader {
		return rawpkt.ErrShortBuffer
	}
	h.put(dst)
	return nil
}

// Decode copies the header fields from the first 20 bytes of src.
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

// Checksum calculates the header checksum as if the Check field were zero.
// The result is ready to be stored in Check.
func (h *Header) Checksum() uint16 {
	hdr := *h
	hdr.Check = 0
	b := hdr.Bytes()
	return rawpkt.Checksum(b[:])
}

// SetChecksum calculates the header checksum and stores it in the Check field.
func (h *Header) SetChecksum() { h.Check = h.Checksum() }

// ValidChecksum reports whether the Check field holds the correct checksum.
func (h *Header) ValidChecksum() bool {
	b := h.Bytes()
	return rawpkt.ValidChecksum(b[:])
}

// VersionAndIHL returns the version and IHL fields in the IPv4 header. Version should always be 4.
func (h *Header) VersionAndIHL() (version, IHL uint8) {
	return h.VerIHL >> 4, h.VerIHL & 0xf
}

// SetVersionAndIHL sets the version and IHL fields in the IPv4 header.
func (h *Header) SetVersionAndIHL(version, IHL uint8) { h.VerIHL = version<<4 | IHL&0xf }

// HeaderLength returns the length of the IPv4 header as calculated using IHL. It includes IP options.
func (h *Header) HeaderLength() int { return 4 * int(h.VerIHL&0xf) }

func (h *Header) String() string {
	src := h.Src
	dst := h.Dst
	return fmt.Sprintf("IP proto=%d SRC=%d.%d.%d.%d DST=%d.%d.%d.%d LEN=%d TTL=%d ID=%d ToS=0x%x",
		h.Protocol, src[0], src[1], src[2], src[3], dst[0], dst[1], dst[2], dst[3],
		rawpkt.NetToHost16(h.TotalLen), h.TTL, rawpkt.NetToHost16(h.ID), h.ToS)
}

func (h *Header) put(b []byte) {
	_ = b[SizeHeader-1]
	b[0] = h.VerIHL
	b[1] = h.ToS
	binary.NativeEndian.PutUint16(b[2:4], h.TotalLen)
	binary.NativeEndian.PutUint16(b[4:6], h.ID)
	binary.NativeEndian.PutUint16(b[6:8], h.Frag)
	b[8] = h.TTL
	b[9] = h.Protocol
	binary.NativeEndian.PutUint16(b[10:12], h.Check)
	copy(b[12:16], h.Src[:])
	copy(b[16:20], h.Dst[:])
}

func (h *Header) decode(b []byte) {
	_ = b[SizeHeader-1]
	h.VerIHL = b[0]
	h.ToS = b[1]
	h.TotalLen = binary.NativeEndian.Uint16(b[2:4])
	h.ID = binary.NativeEndian.Uint16(b[4:6])
	h.Frag = binary.NativeEndian.Uint16(b[6:8])
	h.TTL = b[8]
	h.Protocol = b[9]
	h.Check = binary.NativeEndian.Uint16(b[10:12])
	h.Src = [4]byte(b[12:16])
	h.Dst = [4]byte(b[16:20])
}

// BytesCodec converts a [Header] to and from its wire bytes. It implements [rawpkt.Codec].
type BytesCodec struct{}

func (BytesCodec) From(b [SizeHeader]byte) Header { return HeaderFrom(b) }
func (BytesCodec) To(h Header) [SizeHeader]byte   { return h.Bytes() }

var _ rawpkt.Codec[Header, [SizeHeader]byte] = BytesCodec{}
