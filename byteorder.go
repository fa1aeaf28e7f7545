package rawpkt

import "encoding/binary"

// Header layouts hold multi-byte fields exactly as a native-order read of the
// wire bytes would produce them. The functions below translate between such raw
// field values and host-order numbers, as htons/ntohs do in C.

// HostToNet16 returns the raw field value that encodes v in network order.
func HostToNet16(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}

// NetToHost16 returns the host-order number held by the raw field value v.
func NetToHost16(v uint16) uint16 {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	return binary.BigEndian.Uint16(b[:])
}

// HostToNet32 returns the raw field value that encodes v in network order.
func HostToNet32(v uint32) uint32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return binary.NativeEndian.Uint32(b[:])
}

// NetToHost32 returns the host-order number held by the raw field value v.
func NetToHost32(v uint32) uint32 {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], v)
	return binary.BigEndian.Uint32(b[:])
}
