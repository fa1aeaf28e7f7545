// Package addr implements IPv4, IPv6 and hardware address values.
//
// Addresses are fixed size octet arrays with value semantics. No validation of
// the address contents is performed: any octet sequence of the right length is
// an address.
package addr

// Address sizes in octets.
const (
	SizeIPv4 = 4
	SizeIPv6 = 16
	SizeMAC  = 6
)
