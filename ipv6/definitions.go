package ipv6

// ToS represents the Traffic Class of an IPv6 packet. Its layout is that of the IPv4 ToS:
// 6 MSB are Differentiated Services and 2 LSB are Explicit Congestion Notification.
type ToS uint8

// DS returns the Differentiated Services field.
func (tos ToS) DS() uint8 { return uint8(tos) >> 2 }

// ECN returns the Explicit Congestion Notification field.
func (tos ToS) ECN() uint8 { return uint8(tos & 0b11) }
