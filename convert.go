package rawpkt

// Codec converts values of type V to and from the external representation R.
// A value type may have several codecs, one per representation. IPv4 addresses
// for example convert to both a 4 byte array and a uint32.
//
// Codecs are zero-sized types resolved at compile time:
//
//	ip := rawpkt.Convert[addr.IPv4, uint32](addr.IPv4Uint32{}, 0xc0a80101)
//	b := rawpkt.Represent[addr.IPv4, [4]byte](addr.IPv4Bytes{}, ip)
type Codec[V, R any] interface {
	// From builds a value from its representation.
	From(R) V
	// To returns the representation of v. It never aliases v's storage.
	To(v V) R
}

// Convert builds a V from its representation r using codec c.
func Convert[V, R any, C Codec[V, R]](c C, r R) V {
	return c.From(r)
}

// Represent returns the representation of v using codec c.
func Represent[V, R any, C Codec[V, R]](c C, v V) R {
	return c.To(v)
}

// RoundTrip returns the representation obtained after converting r to a V and back.
// For a well-behaved codec the result equals r.
func RoundTrip[V, R any, C Codec[V, R]](c C, r R) R {
	return c.To(c.From(r))
}
