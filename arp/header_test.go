package arp_test

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
	"github.com/soypat/rawpkt/arp"
	"github.com/soypat/rawpkt/ethernet"
	"github.com/soypat/rawpkt/internal/ltesto"
)

func TestHeaderSize(t *testing.T) {
	var h arp.Header
	if arp.SizeHeader != 28 {
		t.Errorf("SizeHeader %d, want 28", arp.SizeHeader)
	}
	if sz := unsafe.Sizeof(h); sz != 28 {
		t.Errorf("in-memory header size %d, want 28", sz)
	}
	if sz := binary.Size(h); sz != 28 {
		t.Errorf("packed header size %d, want 28", sz)
	}
	var tests = []struct {
		name string
		off  uintptr
		want uintptr
	}{
		{"ProtocolType", unsafe.Offsetof(h.ProtocolType), 2},
		{"HardwareLen", unsafe.Offsetof(h.HardwareLen), 4},
		{"ProtocolLen", unsafe.Offsetof(h.ProtocolLen), 5},
		{"Opcode", unsafe.Offsetof(h.Opcode), 6},
		{"SenderMAC", unsafe.Offsetof(h.SenderMAC), 8},
		{"SenderIP", unsafe.Offsetof(h.SenderIP), 14},
		{"TargetMAC", unsafe.Offsetof(h.TargetMAC), 18},
		{"TargetIP", unsafe.Offsetof(h.TargetIP), 24},
	}
	for _, test := range tests {
		if test.off != test.want {
			t.Errorf("%s at offset %d, want %d", test.name, test.off, test.want)
		}
	}
}

func randHeader(rng *rand.Rand) (h arp.Header) {
	h.HardwareType = uint16(rng.Uint32())
	h.ProtocolType = uint16(rng.Uint32())
	h.HardwareLen = uint8(rng.Uint32())
	h.ProtocolLen = uint8(rng.Uint32())
	h.Opcode = uint16(rng.Uint32())
	rng.Read(h.SenderMAC[:])
	rng.Read(h.SenderIP[:])
	rng.Read(h.TargetMAC[:])
	rng.Read(h.TargetIP[:])
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
	}
}

func TestPutDecode(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, 60)
	for i := 0; i < 128; i++ {
		want := randHeader(rng)
		rng.Read(buf)
		trailer := append([]byte{}, buf[arp.SizeHeader:]...)
		if err := want.Put(buf); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(trailer, buf[arp.SizeHeader:]) {
			t.Fatal("Put wrote past header")
		}
		var got arp.Header
		if err := got.UnmarshalBinary(buf); err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("decoded %+v, want %+v", got, want)
		}
		buf[8] ^= 0xff
		if got.SenderMAC != want.SenderMAC {
			t.Fatal("decoded header aliases buffer")
		}
		if rawpkt.Convert[arp.Header](arp.BytesCodec{}, want.Bytes()) != want {
			t.Fatal("codec mismatch")
		}
	}
	var h arp.Header
	if err := h.Put(make([]byte, arp.SizeHeader-1)); !errors.Is(err, rawpkt.ErrShortBuffer) {
		t.Errorf("want short buffer error, got %v", err)
	}
	if err := h.Decode(make([]byte, arp.SizeHeader-1)); !errors.Is(err, rawpkt.ErrShortBuffer) {
		t.Errorf("want short buffer error, got %v", err)
	}
}

func TestSwapTargetSender(t *testing.T) {
	h := arp.Header{
		SenderMAC: [6]byte{1, 1, 1, 1, 1, 1},
		SenderIP:  [4]byte{192, 168, 1, 1},
		TargetMAC: [6]byte{2, 2, 2, 2, 2, 2},
		TargetIP:  [4]byte{192, 168, 1, 2},
	}
	h.SwapTargetSender()
	if h.SenderIP != [4]byte{192, 168, 1, 2} || h.TargetMAC != [6]byte{1, 1, 1, 1, 1, 1} {
		t.Fatalf("bad swap %+v", h)
	}
}

func TestGopacketInterop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var gen ltesto.PacketGen
	for i := 0; i < 32; i++ {
		gen.RandomizeAddrs(rng)
		frame := gen.AppendARPRequest(nil)
		if len(frame) != ethernet.SizeHeader+arp.SizeHeader {
			t.Fatalf("frame length %d", len(frame))
		}
		pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
		if errLayer := pkt.ErrorLayer(); errLayer != nil {
			t.Fatal(errLayer.Error())
		}
		arpLayer, ok := pkt.Layer(layers.LayerTypeARP).(*layers.ARP)
		if !ok {
			t.Fatal("gopacket found no ARP layer")
		}
		switch {
		case arpLayer.AddrType != layers.LinkTypeEthernet:
			t.Fatalf("hardware type %v", arpLayer.AddrType)
		case arpLayer.Protocol != layers.EthernetTypeIPv4:
			t.Fatalf("protocol type %v", arpLayer.Protocol)
		case arpLayer.HwAddressSize != 6 || arpLayer.ProtAddressSize != 4:
			t.Fatalf("address sizes %d %d", arpLayer.HwAddressSize, arpLayer.ProtAddressSize)
		case arpLayer.Operation != layers.ARPRequest:
			t.Fatalf("operation %d", arpLayer.Operation)
		case !bytes.Equal(arpLayer.SourceHwAddress, gen.SrcMAC[:]):
			t.Fatalf("sender MAC %x", arpLayer.SourceHwAddress)
		case !bytes.Equal(arpLayer.SourceProtAddress, gen.SrcIPv4[:]):
			t.Fatalf("sender IP %v", arpLayer.SourceProtAddress)
		case !bytes.Equal(arpLayer.DstProtAddress, gen.DstIPv4[:]):
			t.Fatalf("target IP %v", arpLayer.DstProtAddress)
		}

		var h arp.Header
		if err := h.Decode(frame[ethernet.SizeHeader:]); err != nil {
			t.Fatal(err)
		}
		if h.Operation() != arp.OpRequest || h.SenderIP != gen.SrcIPv4 || h.TargetMAC != [6]byte{} {
			t.Fatalf("bad decode %+v", h)
		}
	}
}
