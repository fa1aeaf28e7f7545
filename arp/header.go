package arp

import (
	"encoding/binary"

	"github.com/soypat/rawpkt"
)

// SizeHeader is the size of an ARP packet for Ethernet hardware and IPv4 protocol addresses.
const SizeHeader = 28

// Header is an ARP packet for 6 octet hardware addresses and 4 octet protocol
// addresses (Ethernet/IPv4). See [RFC826].
//
// Field order and widths match the wire format exactly and the struct has no padding.
// Multi-byte integer fields hold raw field values, see [rawpkt.HostToNet16].
//
// [RFC826]: https://tools.ietf.org/html/rfc826
type Header struct {
	HardwareType uint16  // 0:2 network link protocol type. Ethernet is 1.
	ProtocolType uint16  // 2:4 internetwork protocol EtherType. IPv4 is 0x0800.
	HardwareLen  uint8   // 4 hardware address length, 6 for Ethernet.
	ProtocolLen  uint8   // 5 protocol address length, 4 for IPv4.
	Opcode       uint16  // 6:8 operation, see [Operation].
	SenderMAC    [6]byte // 8:14
	SenderIP     [4]byte // 14:18
	TargetMAC    [6]byte // 18:24 ignored in requests.
	TargetIP     [4]byte // 24:28
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

// Put writes the header into the first 28 bytes of dst.
func (h *Header) Put(dst []byte) error {
	if len(dst) < SizeHeader {
		return rawpkt.ErrShortBuffer
	}
	h.put(dst)
	return nil
}

// Decode copies the header fields from the first 28 bytes of src.
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

// Operation returns the host-order ARP operation. See [Operation].
func (h *Header) Operation() Operation { return Operation(rawpkt.NetToHost16(h.Opcode)) }

// SetOperation sets the Opcode field from a host-order operation.
func (h *Header) SetOperation(op Operation) { h.Opcode = rawpkt.HostToNet16(uint16(op)) }

// SetEthernetIPv4 sets the hardware and protocol type and length fields for an Ethernet/IPv4 ARP packet.
func (h *Header) SetEthernetIPv4() {
	h.HardwareType = rawpkt.HostToNet16(HardwareEthernet)
	h.ProtocolType = rawpkt.HostToNet16(protoIPv4)
	h.HardwareLen = 6
	h.ProtocolLen = 4
}

// SwapTargetSender swaps the sender and target addresses, which turns a received request into the skeleton of a reply.
func (h *Header) SwapTargetSender() {
	h.SenderMAC, h.TargetMAC = h.TargetMAC, h.SenderMAC
	h.SenderIP, h.TargetIP = h.TargetIP, h.SenderIP
}

func (h *Header) put(b []byte) {
	_ = b[SizeHeader-1]
	binary.NativeEndian.PutUint16(b[0:2], h.HardwareType)
	binary.NativeEndian.PutUint16(b[2:4], h.ProtocolType)
	b[4] = h.HardwareLen
	b[5] = h.ProtocolLen
	binary.NativeEndian.PutUint16(b[6:8], h.Opcode)
	copy(b[8:14], h.SenderMAC[:])
	copy(b[14:18], h.SenderIP[:])
	copy(b[18:24], h.TargetMAC[:])
	copy(b[24:28], h.TargetIP[:])
}

func (h *Header) decode(b []byte) {
	_ = b[SizeHeader-1]
	h.HardwareType = binary.NativeEndian.Uint16(b[0:2])
	h.ProtocolType = binary.NativeEndian.Uint16(b[2:4])
	h.HardwareLen = b[4]
	h.ProtocolLen = b[5]
	h.Opcode = binary.NativeEndian.Uint16(b[6:8])
	h.SenderMAC = [6]byte(b[8:14])
	h.SenderIP = [4]byte(b[14:18])
	h.TargetMAC = [6]byte(b[18:24])
	h.TargetIP = [4]byte(b[24:28])
}

// BytesCodec converts a [Header] to and from its wire bytes. It implements [rawpkt.Codec].
type BytesCodec struct{}

func (BytesCodec) From(b [SizeHeader]byte) Header { return HeaderFrom(b) }
func (BytesCodec) To(h Header) [SizeHeader]byte   { return h.Bytes() }

var _ rawpkt.Codec[Header, [SizeHeader]byte] = BytesCodec{}
