package rawpkt

import "encoding/binary"

// Checksum returns the 16-bit ones' complement of the ones' complement sum of
// the 16-bit words in b, as used by the IPv4 and ICMP header checksums.
//
// Words are read in the host's native byte order, which is how the header
// layouts of this module store their multi-byte fields. A checksum computed this
// way and stored natively into a header field therefore lands on the wire in the
// correct byte order on any host. A trailing odd byte is added unshifted.
//
// The sum is accumulated in a signed 32-bit integer which wraps on overflow,
// so buffers above ~64KiB do not produce a meaningful checksum.
// An empty buffer yields 0xffff.
func Checksum(b []byte) uint16 {
	var sum int32
	n := len(b) &^ 1
	for i := 0; i < n; i += 2 {
		sum += int32(binary.NativeEndian.Uint16(b[i:]))
	}
	if n != len(b) {
		sum += int32(b[n])
	}
	return checksumFold(sum)
}

func checksumFold(sum int32) uint16 {
	sum = (sum >> 16) + (sum & 0xffff)
	// the first fold may leave a carry in bit 16, a second round absorbs it.
	sum += sum >> 16
	return uint16(^sum)
}

// ValidChecksum reports whether b, checksum field included, sums to zero.
// This is how a received IPv4 or ICMP header is checked.
func ValidChecksum(b []byte) bool {
	return Checksum(b) == 0
}

// NeverZeroChecksum returns 0xffff in place of a zero checksum.
// 0x0000 and 0xffff are the same number in ones' complement math.
func NeverZeroChecksum(sum16 uint16) uint16 {
	if sum16 == 0 {
		return 0xffff
	}
	return sum16
}
