package icmpv4

import "strconv"

// Type is the ICMP message type.
type Type uint8

const (
	TypeEchoReply Type = 0 // echo reply
	TypeEcho      Type = 8 // echo

	TypeDestinationUnreachable Type = 3 // destination unreachable
	TypeSourceQuench           Type = 4 // source quench
	TypeRedirect               Type = 5 // redirect

	TypeTimeExceeded     Type = 11 // time exceeded
	TypeParameterProblem Type = 12 // parameter problem

	TypeTimestamp      Type = 13 // timestamp
	TypeTimestampReply Type = 14 // timestamp reply

	TypeInfoRequest      Type = 15 // information request
	TypeInfoRequestReply Type = 16 // information request reply
)

type CodeTimeExceeded uint8

const (
	CodeExceededInTransit  CodeTimeExceeded = iota // TTL exceeded in transit
	CodeFragmentReassembly                         // fragment reassembly time exceeded
)

type CodeDestinationUnreachable uint8

const (
	CodeNetUnreachable     CodeDestinationUnreachable = iota // net unreachable
	CodeHostUnreachable                                      // host unreachable
	CodeProtoUnreachable                                     // protocol unreachable
	CodePortUnreachable                                      // port unreachable
	CodeFragNeededAndDFSet                                   // fragmentation needed and DF set
	CodeSourceRouteFailed                                    // source route failed
)

type CodeRedirect uint8

const (
	CodeRedirectForNetwork       CodeRedirect = iota // redirect for network
	CodeRedirectForHost                              // redirect for host
	CodeRedirectForToSAndNetwork                     // redirect for ToS+network
	CodeRedirectToSAndHost                           // redirect for ToS+host
)

func (t Type) String() string {
	switch t {
	case TypeEchoReply:
		return "echo reply"
	case TypeEcho:
		return "echo"
	case TypeDestinationUnreachable:
		return "destination unreachable"
	case TypeSourceQuench:
		return "source quench"
	case TypeRedirect:
		return "redirect"
	case TypeTimeExceeded:
		return "time exceeded"
	case TypeParameterProblem:
		return "parameter problem"
	case TypeTimestamp:
		return "timestamp"
	case TypeTimestampReply:
		return "timestamp reply"
	case TypeInfoRequest:
		return "information request"
	case TypeInfoRequestReply:
		return "information request reply"
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// CodeString returns the name of code for messages of type t. Codes of types
// without named codes are printed as decimal numbers.
func (t Type) CodeString(code uint8) string {
	switch t {
	case TypeDestinationUnreachable:
		return CodeDestinationUnreachable(code).String()
	case TypeRedirect:
		return CodeRedirect(code).String()
	case TypeTimeExceeded:
		return CodeTimeExceeded(code).String()
	}
	return strconv.Itoa(int(code))
}

func (c CodeTimeExceeded) String() string {
	switch c {
	case CodeExceededInTransit:
		return "TTL exceeded in transit"
	case CodeFragmentReassembly:
		return "fragment reassembly time exceeded"
	}
	return "CodeTimeExceeded(" + strconv.Itoa(int(c)) + ")"
}

func (c CodeDestinationUnreachable) String() string {
	switch c {
	case CodeNetUnreachable:
		return "net unreachable"
	case CodeHostUnreachable:
		return "host unreachable"
	case CodeProtoUnreachable:
		return "protocol unreachable"
	case CodePortUnreachable:
		return "port unreachable"
	case CodeFragNeededAndDFSet:
		return "fragmentation needed and DF set"
	case CodeSourceRouteFailed:
		return "source route failed"
	}
	return "CodeDestinationUnreachable(" + strconv.Itoa(int(c)) + ")"
}

func (c CodeRedirect) String() string {
	switch c {
	case CodeRedirectForNetwork:
		return "redirect for network"
	case CodeRedirectForHost:
		return "redirect for host"
	case CodeRedirectForToSAndNetwork:
		return "redirect for ToS and network"
	case CodeRedirectToSAndHost:
		return "redirect for ToS and host"
	}
	return "CodeRedirect(" + strconv.Itoa(int(c)) + ")"
}
