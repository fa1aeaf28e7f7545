package ethernet

import (
	"encoding/binary"

	"github.com/soypat/rawpkt"
)

// SizeHeader is the size of an Ethernet header without 802.1Q VLAN tag.
const SizeHeader = 14

// Header is the Ethernet II header without preamble: the first byte is the start of
// the destination address. See [IEEE 802.3].
//
// Field order and widths match the wire format exactly and the struct has no padding.
// Proto holds the raw field value, see [rawpkt.HostToNet16].
//
// [IEEE 802.3]: https://standards.ieee.org/ieee/802.3/7071/
type Header struct {
	Dest   [6]byte // 0:6 destination hardware address
	Source [6]byte // 6:12 source hardware address
	Proto  uint16  // 12:14 EtherType or payload size
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

// Put writes the header into the first 14 bytes of dst.
func (h *Header) Put(dst []byte) error {
	if len(dst) < SizeHeader {
		return rawpkt.ErrShortBuffer
	}
	h.put(dst)
	return nil
}

// Decode copies the header fields from the first 14 bytes of src.
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

// EtherType returns the host-order value of the EtherType/Size field.
// Caller should check if it represents the payload size with [Type.IsSize].
func (h *Header) EtherType() Type { return Type(rawpkt.NetToHost16(h.Proto)) }

// SetEtherType sets the EtherType field from a host-order value.
func (h *Header) SetEtherType(t Type) { h.Proto = rawpkt.HostToNet16(uint16(t)) }

// IsBroadcast returns true if the destination is the broadcast address ff:ff:ff:ff:ff:ff.
func (h *Header) IsBroadcast() bool { return h.Dest == BroadcastAddr() }

func (h *Header) put(b []byte) {
	_ = b[SizeHeader-1]
	copy(b[0:6], h.Dest[:])
	copy(b[6:12], h.Source[:])
	binary.NativeEndian.PutUint16(b[12:14], h.Proto)
}

func (h *Header) decode(b []byte) {
	_ = b[SizeHeader-1]
	h.Dest = [6]byte(b[0:6])
	h.Source = [6]byte(b[6:12])
	h.Proto = binary.NativeEndian.Uint16(b[12:14])
}

// BytesCodec converts a [Header] to and from its wire bytes. It implements [rawpkt.Codec].
type BytesCodec struct{}

func (BytesCodec) From(b [SizeHeader]byte) Header { return HeaderFrom(b) }
func (BytesCodec) To(h Header) [SizeHeader]byte   { return h.Bytes() }

var _ rawpkt.Codec[Header, [SizeHeader]byte] = BytesCodec{}
