package icmpv4

import (
	"encoding/binary"

	"github.com/soypat/rawpkt"
)

// SizeHeader is the size of the fixed ICMP header shared by echo, timestamp and
// information messages.
const SizeHeader = 8

// Header is the ICMP header of an echo (ping) message. See [RFC792].
// For other message types ID and Seq hold the first 4 bytes of the message body.
//
// Field order and widths match the wire format exactly and the struct has no padding.
// ID and Seq hold raw field values, see [rawpkt.HostToNet16].
//
// [RFC792]: https://tools.ietf.org/html/rfc792
type Header struct {
	Type  uint8  // 0 see [Type].
	Code  uint8  // 1
	Check uint16 // 2:4 checksum of header and payload.
	ID    uint16 // 4:6 echo identifier.
	Seq   uint16 // 6:8 echo sequence number.
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

// Put writes the header into the first 8 bytes of dst.
func (h *Header) Put(dst []byte) error {
	if len(dst) < SizeHeader {
		return rawpkt.ErrShortBuffer
	}
	h.put(dst)
	return nil
}

// Decode copies the header fields from the first 8 bytes of src.
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

// Checksum calculates the ICMP checksum over the header and payload, treating
// the Check field as zero as per RFC 792.
func (h *Header) Checksum(payload []byte) uint16 {
	hdr := *h
	hdr.Check = 0
	return rawpkt.Checksum(hdr.appendWithPayload(payload))
}

// SetChecksum calculates the ICMP checksum and stores it in the Check field.
func (h *Header) SetChecksum(payload []byte) { h.Check = h.Checksum(payload) }

// ValidChecksum reports whether the Check field holds the correct checksum for payload.
func (h *Header) ValidChecksum(payload []byte) bool {
	return rawpkt.ValidChecksum(h.appendWithPayload(payload))
}

func (h *Header) appendWithPayload(payload []byte) []byte {
	msg := make([]byte, SizeHeader+len(payload))
	h.put(msg)
	copy(msg[SizeHeader:], payload)
	return msg
}

func (h *Header) put(b []byte) {
	_ = b[SizeHeader-1]
	b[0] = h.Type
	b[1] = h.Code
	binary.NativeEndian.PutUint16(b[2:4], h.Check)
	binary.NativeEndian.PutUint16(b[4:6], h.ID)
	binary.NativeEndian.PutUint16(b[6:8], h.Seq)
}

func (h *Header) decode(b []byte) {
	_ = b[SizeHeader-1]
	h.Type = b[0]
	h.Code = b[1]
	h.Check = binary.NativeEndian.Uint16(b[2:4])
	h.ID = binary.NativeEndian.Uint16(b[4:6])
	h.Seq = binary.NativeEndian.Uint16(b[6:8])
}

// BytesCodec converts a [Header] to and from its wire bytes. It implements [rawpkt.Codec].
type BytesCodec struct{}

func (BytesCodec) From(b [SizeHeader]byte) Header { return HeaderFrom(b) }
func (BytesCodec) To(h Header) [SizeHeader]byte   { return h.Bytes() }

var _ rawpkt.Codec[Header, [SizeHeader]byte] = BytesCodec{}
