// Package ltesto provides packet generation and reference routines for tests.
package ltesto

import (
	"encoding/binary"
	"math/rand"
	"unsafe"

	"github.com/soypat/rawpkt"
	"github.com/soypat/rawpkt/arp"
	"github.com/soypat/rawpkt/ethernet"
	"github.com/soypat/rawpkt/ipv4"
	"github.com/soypat/rawpkt/ipv4/icmpv4"
	"github.com/soypat/rawpkt/ipv6"
)

// PacketGen generates frames between two fixed endpoints.
type PacketGen struct {
	SrcMAC, DstMAC   [6]byte  // hardware address
	SrcIPv4, DstIPv4 [4]byte  // address
	SrcIPv6, DstIPv6 [16]byte // address
}

func (gen *PacketGen) RandomizeAddrs(rng *rand.Rand) {
	rng.Read(gen.SrcMAC[:])
	rng.Read(gen.DstMAC[:])
	rng.Read(gen.SrcIPv4[:])
	rng.Read(gen.DstIPv4[:])
	rng.Read(gen.SrcIPv6[:])
	rng.Read(gen.DstIPv6[:])
}

// AppendARPRequest appends an Ethernet broadcast frame carrying an ARP request
// from the source endpoint for the destination IPv4 address.
func (gen *PacketGen) AppendARPRequest(dst []byte) []byte {
	ehdr := ethernet.Header{Dest: ethernet.BroadcastAddr(), Source: gen.SrcMAC}
	ehdr.SetEtherType(ethernet.TypeARP)
	var ahdr arp.Header
	ahdr.SetEthernetIPv4()
	ahdr.SetOperation(arp.OpRequest)
	ahdr.SenderMAC = gen.SrcMAC
	ahdr.SenderIP = gen.SrcIPv4
	ahdr.TargetIP = gen.DstIPv4
	dst, _ = ehdr.AppendBinary(dst)
	dst, _ = ahdr.AppendBinary(dst)
	return dst
}

// AppendICMPEcho appends an Ethernet frame with an IPv4 ICMP echo request carrying
// payloadLen random bytes. Both checksums are set.
func (gen *PacketGen) AppendICMPEcho(dst []byte, rng *rand.Rand, payloadLen int) []byte {
	payload := make([]byte, payloadLen)
	rng.Read(payload)
	ehdr := ethernet.Header{Dest: gen.DstMAC, Source: gen.SrcMAC}
	ehdr.SetEtherType(ethernet.TypeIPv4)
	ihdr := ipv4.Header{
		TotalLen: rawpkt.HostToNet16(uint16(ipv4.SizeHeader + icmpv4.SizeHeader + payloadLen)),
		ID:       rawpkt.HostToNet16(uint16(rng.Uint32())),
		TTL:      64,
		Protocol: uint8(rawpkt.IPProtoICMP),
		Src:      gen.SrcIPv4,
		Dst:      gen.DstIPv4,
	}
	ihdr.SetVersionAndIHL(4, 5)
	ihdr.SetFlags(ipv4.FlagDontFragment)
	ihdr.SetChecksum()
	chdr := icmpv4.Header{
		Type: uint8(icmpv4.TypeEcho),
		ID:   rawpkt.HostToNet16(uint16(rng.Uint32())),
		Seq:  rawpkt.HostToNet16(uint16(rng.Uint32())),
	}
	chdr.SetChecksum(payload)
	dst, _ = ehdr.AppendBinary(dst)
	dst, _ = ihdr.AppendBinary(dst)
	dst, _ = chdr.AppendBinary(dst)
	return append(dst, payload...)
}

// AppendIPv6 appends an Ethernet frame with an IPv6 header followed by
// payloadLen random bytes. The payload is labeled as having no next header.
func (gen *PacketGen) AppendIPv6(dst []byte, rng *rand.Rand, payloadLen int) []byte {
	ehdr := ethernet.Header{Dest: gen.DstMAC, Source: gen.SrcMAC}
	ehdr.SetEtherType(ethernet.TypeIPv6)
	hdr := ipv6.Header{
		VerClassFlow: rawpkt.HostToNet32(ipv6.VersionTrafficAndFlow(6, 0, rng.Uint32())),
		PayloadLen:   rawpkt.HostToNet16(uint16(payloadLen)),
		NextHeader:   uint8(rawpkt.IPProtoIPv6NoNxt),
		HopLimit:     255,
		Src:          gen.SrcIPv6,
		Dst:          gen.DstIPv6,
	}
	dst, _ = ehdr.AppendBinary(dst)
	dst, _ = hdr.AppendBinary(dst)
	off := len(dst)
	dst = append(dst, make([]byte, payloadLen)...)
	rng.Read(dst[off:])
	return dst
}

// ChecksumRFC1071 is a reference Internet checksum reading words in network order
// and padding an odd trailing byte with zero, as specified by RFC 1071.
func ChecksumRFC1071(b []byte) uint16 {
	var sum uint32
	for len(b) >= 2 {
		sum += uint32(binary.BigEndian.Uint16(b))
		b = b[2:]
	}
	if len(b) == 1 {
		sum += uint32(b[0]) << 8
	}
	for sum > 0xffff {
		sum = sum>>16 + sum&0xffff
	}
	return ^uint16(sum)
}

// Overlay returns the in-memory bytes of v, which for the header layouts is
// what a C program casting the struct over a packet buffer would see.
func Overlay[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
