package arp

import "strconv"

// HardwareEthernet is the HardwareType value for Ethernet (10Mb) as assigned by IANA.
const HardwareEthernet = 1

// protoIPv4 is the IPv4 EtherType. The ethernet package is not imported to keep arp a leaf.
const protoIPv4 = 0x0800

// Operation represents the type of ARP packet, either request or reply/response.
type Operation uint16

const (
	OpRequest Operation = 1 // request
	OpReply   Operation = 2 // reply
)

func (op Operation) String() string {
	switch op {
	case OpRequest:
		return "request"
	case OpReply:
		return "reply"
	}
	return "Operation(" + strconv.Itoa(int(op)) + ")"
}
