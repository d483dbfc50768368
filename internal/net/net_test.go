package net

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIPv4(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"dotted quad", "192.168.1.1", true},
		{"zeros", "0.0.0.0", true},
		{"broadcast", "255.255.255.255", true},
		{"octet overflow", "192.168.1.256", false},
		{"four digit octet", "192.168.1.1234", false},
		{"leading zero", "192.168.01.1", false},
		{"three parts", "192.168.1", false},
		{"five parts", "1.2.3.4.5", false},
		{"trailing dot", "1.2.3.4.", false},
		{"trailing garbage", "1.2.3.4x", false},
		{"port", "1.2.3.4:53", false},
		{"mapped v6", "::ffff:1.2.3.4", false},
		{"v6", "2606:1a40::", false},
		{"hostname", "host.example.com", false},
		{"empty", "", false},
		{"double zero", "00.1.2.3", false},
		{"empty part", "1..2.3", false},
		{"leading dot", ".1.2.3", false},
		{"too long", "255.255.255.2555", false},
		{"sign", "+1.2.3.4", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsIPv4(tc.ip))
			assert.Equal(t, tc.want, IsIPv4([]byte(tc.ip)))
		})
	}
}

func TestIsIPv4_noAllocs(t *testing.T) {
	inputs := []string{"192.168.1.1", "192.168.1.1234", "192.168.01.1", "host.example.com", "::ffff:1.2.3.4"}
	for _, in := range inputs {
		buf := []byte(in)
		allocs := testing.AllocsPerRun(100, func() {
			_ = IsIPv4(in)
			_ = IsIPv4(buf)
		})
		assert.Zerof(t, allocs, "IsIPv4(%q) allocated", in)
	}
}

func TestIsIPv6(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"v6", "2606:1a40::", true},
		{"loopback", "::1", true},
		{"mapped v4", "::ffff:1.2.3.4", true},
		{"v4", "76.76.2.0", false},
		{"bracketed", "[::1]", false},
		{"hostname", "ipv6.controld.io", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsIPv6(tc.ip))
		})
	}
}

func FuzzIsIPv4(f *testing.F) {
	for _, s := range []string{"192.168.1.1", "192.168.1.1234", "01.2.3.4", "1.2.3.4.", "::ffff:1.2.3.4", ""} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		addr, err := netip.ParseAddr(s)
		want := err == nil && addr.Is4()
		if got := IsIPv4(s); got != want {
			t.Fatalf("IsIPv4(%q) = %v, netip says %v", s, got, want)
		}
	})
}
