package ipv6_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/soypat/rawpkt"
	"github.com/soypat/rawpkt/ethernet"
	"github.com/soypat/rawpkt/internal/ltesto"
	"github.com/soypat/rawpkt/ipv6"
)

func TestHeaderSize(t *testing.T) {
	var h ipv6.Header
	if ipv6.SizeHeader != 40 {
		t.Errorf("SizeHeader %d, want 40", ipv6.SizeHeader)
	}
	if sz := unsafe.Sizeof(h); sz != 40 {
		t.Errorf("in-memory header size %d, want 40", sz)
	}
	if sz := binary.Size(h); sz != 40 {
		t.Errorf("packed header size %d, want 40", sz)
	}
	if off := unsafe.Offsetof(h.Dst); off != 24 {
		t.Errorf("destination at offset %d, want 24", off)
	}
}

func randHeader(rng *rand.Rand) (h ipv6.Header) {
	h.VerClassFlow = rng.Uint32()
	h.PayloadLen = uint16(rng.Uint32())
	h.NextHeader = uint8(rng.Uint32())
	h.HopLimit = uint8(rng.Uint32())
	rng.Read(h.Src[:])
	rng.Read(h.Dst[:])
	return h
}

func TestHeaderOverlay(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 128; i++ {
		h := randHeader(rng)
		b := h.Bytes()
		if !bytes.Equal(b[:], ltesto.Overlay(&h)) {
			t.Fatalf("encoded header differs from memory overlay\n%x\n%x", b, ltesto.Overlay(&h))
		}
		var w bytes.Buffer
		binary.Write(&w, binary.NativeEndian, h)
		if !bytes.Equal(b[:], w.Bytes()) {
			t.Fatalf("encoded header differs from binary.Write\n%x\n%x", b, w.Bytes())
		}
		var got ipv6.Header
		if err := got.UnmarshalBinary(b[:]); err != nil || got != h {
			t.Fatalf("decode mismatch %+v != %+v (%v)", got, h, err)
		}
		if rawpkt.Represent[ipv6.Header, [ipv6.SizeHeader]byte](ipv6.BytesCodec{}, h) != b {
			t.Fatal("codec mismatch")
		}
	}
	var h ipv6.Header
	if err := h.Put(make([]byte, 39)); !errors.Is(err, rawpkt.ErrShortBuffer) {
		t.Errorf("want short buffer error, got %v", err)
	}
}

func TestVersionTrafficAndFlow(t *testing.T) {
	v := ipv6.VersionTrafficAndFlow(6, 0xb8, 0xabcde)
	if v != 0x6b8abcde {
		t.Fatalf("packed %#x, want 0x6b8abcde", v)
	}
	h := ipv6.Header{VerClassFlow: rawpkt.HostToNet32(v)}
	b := h.Bytes()
	if !bytes.Equal(b[:4], []byte{0x6b, 0x8a, 0xbc, 0xde}) {
		t.Fatalf("first word encoded as %x", b[:4])
	}
	version, tos, flow := ipv6.SplitVersionTrafficAndFlow(rawpkt.NetToHost32(h.VerClassFlow))
	if version != 6 || tos != 0xb8 || flow != 0xabcde {
		t.Fatalf("split %d %#x %#x", version, tos, flow)
	}
	if tos.DS() != 0xb8>>2 || tos.ECN() != 0 {
		t.Fatal("bad traffic class fields")
	}
	if ipv6.VersionTrafficAndFlow(6, 0, 0xfff_ffff)&0xfff0_0000 != 0x6000_0000 {
		t.Fatal("flow label overflows into traffic class")
	}
}

func TestGopacketInterop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var gen ltesto.PacketGen
	for i := 0; i < 32; i++ {
		gen.RandomizeAddrs(rng)
		payloadLen := 1 + rng.Intn(64)
		frame := gen.AppendIPv6(nil, rng, payloadLen)
		var h ipv6.Header
		if err := h.Decode(frame[ethernet.SizeHeader:]); err != nil {
			t.Fatal(err)
		}
		var ip layers.IPv6
		err := ip.DecodeFromBytes(frame[ethernet.SizeHeader:], gopacket.NilDecodeFeedback)
		if err != nil {
			t.Fatal(err)
		}
		version, tos, flow := ipv6.SplitVersionTrafficAndFlow(rawpkt.NetToHost32(h.VerClassFlow))
		switch {
		case ip.Version != 6 || version != 6:
			t.Fatalf("version %d %d", ip.Version, version)
		case ip.TrafficClass != uint8(tos) || ip.FlowLabel != flow:
			t.Fatalf("class/flow %#x/%#x != %#x/%#x", ip.TrafficClass, ip.FlowLabel, tos, flow)
		case int(ip.Length) != payloadLen || rawpkt.NetToHost16(h.PayloadLen) != ip.Length:
			t.Fatalf("payload length %d, want %d", ip.Length, payloadLen)
		case uint8(ip.NextHeader) != h.NextHeader || ip.HopLimit != h.HopLimit:
			t.Fatalf("next header/hop limit %d/%d", ip.NextHeader, ip.HopLimit)
		case !bytes.Equal(ip.SrcIP, gen.SrcIPv6[:]) || !bytes.Equal(ip.DstIP, gen.DstIPv6[:]):
			t.Fatalf("addresses %s %s", ip.SrcIP, ip.DstIP)
		}
	}
}
