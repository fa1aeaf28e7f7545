package ethernet

import "strconv"

// MinPayload is the minimum payload size of an Ethernet frame without 802.1Q tag.
// Shorter payloads are padded with zeros up to this size before transmission.
const MinPayload = 46

// BroadcastAddr returns the all 0xff's broadcast hardware/MAC/EUI/OUI address.
func BroadcastAddr() [6]byte {
	return [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
}

// Type is the host-order value of the EtherType/Size field.
type Type uint16

// IsSize returns true if the EtherType is actually the size of the payload
// and should NOT be interpreted as an EtherType.
func (et Type) IsSize() bool { return et <= 1500 }

// Ethernet type flags
const (
	TypeIPv4                Type = 0x0800 // IPv4
	TypeARP                 Type = 0x0806 // ARP
	TypeWakeOnLAN           Type = 0x0842 // wake on LAN
	TypeRARP                Type = 0x8035 // RARP
	TypeVLAN                Type = 0x8100 // VLAN
	TypeIPv6                Type = 0x86DD // IPv6
	TypeEthernetFlowControl Type = 0x8808 // EthernetFlowCtl
	TypeMPLSUnicast         Type = 0x8847 // MPLS Unicast
	TypeMPLSMulticast       Type = 0x8848 // MPLS Multicast
	TypePPPoEDiscovery      Type = 0x8863 // PPPoE discovery
	TypePPPoESession        Type = 0x8864 // PPPoE session
	TypeIEEE802_1X          Type = 0x888E // IEEE 802.1x
	TypeServiceVLAN         Type = 0x88a8 // service VLAN
	TypeLLDP                Type = 0x88CC // LLDP
	TypeIEEE1588            Type = 0x88F7 // IEEE 1588
)

func (et Type) String() string {
	switch et {
	case TypeIPv4:
		return "IPv4"
	case TypeARP:
		return "ARP"
	case TypeWakeOnLAN:
		return "wake on LAN"
	case TypeRARP:
		return "RARP"
	case TypeVLAN:
		return "VLAN"
	case TypeIPv6:
		return "IPv6"
	case TypeEthernetFlowControl:
		return "EthernetFlowCtl"
	case TypeMPLSUnicast:
		return "MPLS Unicast"
	case TypeMPLSMulticast:
		return "MPLS Multicast"
	case TypePPPoEDiscovery:
		return "PPPoE discovery"
	case TypePPPoESession:
		return "PPPoE session"
	case TypeIEEE802_1X:
		return "IEEE 802.1x"
	case TypeServiceVLAN:
		return "service VLAN"
	case TypeLLDP:
		return "LLDP"
	case TypeIEEE1588:
		return "IEEE 1588"
	}
	if et.IsSize() {
		return "size(" + strconv.Itoa(int(et)) + ")"
	}
	return "Type(0x" + strconv.FormatUint(uint64(et), 16) + ")"
}
