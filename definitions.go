// Package rawpkt holds the primitives shared by the header layout packages:
// the Internet checksum, the [Codec] conversion contract, host/network byte
// order translation for raw header fields and the generic errors.
//
// Header layouts live in the [ethernet], [arp], [ipv4], [icmpv4] and [ipv6]
// packages and address values in [addr].
//
// [ethernet]: https://pkg.go.dev/github.com/soypat/rawpkt/ethernet
// [arp]: https://pkg.go.dev/github.com/soypat/rawpkt/arp
// [ipv4]: https://pkg.go.dev/github.com/soypat/rawpkt/ipv4
// [icmpv4]: https://pkg.go.dev/github.com/soypat/rawpkt/ipv4/icmpv4
// [ipv6]: https://pkg.go.dev/github.com/soypat/rawpkt/ipv6
// [addr]: https://pkg.go.dev/github.com/soypat/rawpkt/addr
package rawpkt

// IPProto represents the IP protocol number carried by the IPv4 Protocol field
// and the IPv6 Next Header field. Only the common values are listed.
type IPProto uint8

// IP protocol numbers.
const (
	IPProtoHopByHop  IPProto = 0   // IPv6 Hop-by-Hop Option [RFC8200]
	IPProtoICMP      IPProto = 1   // Internet Control Message [RFC792]
	IPProtoIGMP      IPProto = 2   // Internet Group Management [RFC1112]
	IPProtoIPv4      IPProto = 4   // IPv4 encapsulation [RFC2003]
	IPProtoTCP       IPProto = 6   // Transmission Control [RFC793]
	IPProtoUDP       IPProto = 17  // User Datagram [RFC768]
	IPProtoIPv6      IPProto = 41  // IPv6 encapsulation [RFC2473]
	IPProtoIPv6Route IPProto = 43  // Routing Header for IPv6 [RFC8200]
	IPProtoIPv6Frag  IPProto = 44  // Fragment Header for IPv6 [RFC8200]
	IPProtoGRE       IPProto = 47  // Generic Routing Encapsulation [RFC2784]
	IPProtoESP       IPProto = 50  // Encap Security Payload [RFC4303]
	IPProtoAH        IPProto = 51  // Authentication Header [RFC4302]
	IPProtoIPv6ICMP  IPProto = 58  // ICMP for IPv6 [RFC8200]
	IPProtoIPv6NoNxt IPProto = 59  // No Next Header for IPv6 [RFC8200]
	IPProtoIPv6Opts  IPProto = 60  // Destination Options for IPv6 [RFC8200]
	IPProtoSCTP      IPProto = 132 // Stream Control Transmission Protocol
)
