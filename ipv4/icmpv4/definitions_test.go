package icmpv4_test

import (
	"testing"

	"github.com/soypat/rawpkt/ipv4/icmpv4"
)

func TestCodeString(t *testing.T) {
	var tests = []struct {
		typ  icmpv4.Type
		code uint8
		want string
	}{
		{icmpv4.TypeEcho, 0, "0"},
		{icmpv4.TypeParameterProblem, 1, "1"},
		{icmpv4.TypeDestinationUnreachable, 0, "net unreachable"},
		{icmpv4.TypeDestinationUnreachable, 3, "port unreachable"},
		{icmpv4.TypeDestinationUnreachable, 4, "fragmentation needed and DF set"},
		{icmpv4.TypeDestinationUnreachable, 13, "CodeDestinationUnreachable(13)"},
		{icmpv4.TypeRedirect, 1, "redirect for host"},
		{icmpv4.TypeRedirect, 3, "redirect for ToS and host"},
		{icmpv4.TypeTimeExceeded, 0, "TTL exceeded in transit"},
		{icmpv4.TypeTimeExceeded, 1, "fragment reassembly time exceeded"},
		{icmpv4.TypeTimeExceeded, 2, "CodeTimeExceeded(2)"},
	}
	for _, tt := range tests {
		if got := tt.typ.CodeString(tt.code); got != tt.want {
			t.Errorf("%s code %d: got %q, want %q", tt.typ, tt.code, got, tt.want)
		}
	}
}
