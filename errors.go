package rawpkt

//go:generate stringer -type=errGeneric -linecomment -output stringers.go .

type errGeneric uint8

// Generic errors returned by address constructors and header codecs.
const (
	_                    errGeneric = iota // non-initialized err
	ErrInvalidAddrLength                   // invalid address length
	ErrShortBuffer                         // short buffer
)

func (err errGeneric) Error() string {
	return err.String()
}
