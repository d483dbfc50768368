package net

import "net/netip"

// IsIPv4 reports whether s, as a whole, is a dotted-quad IPv4 address.
//
// Parts must be decimal 0-255 without leading zeros. IPv6 text, including
// IPv4-mapped forms like "::ffff:1.2.3.4", is not an IPv4 address.
// IsIPv4 never allocates.
func IsIPv4[T ~string | ~[]byte](s T) bool {
	if len(s) > len("255.255.255.255") {
		return false
	}
	parts, digits, val := 0, 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			// Leading zeros are ambiguous (octal in some parsers).
			if digits == 1 && val == 0 {
				return false
			}
			val = val*10 + int(c-'0')
			digits++
			if val > 255 {
				return false
			}
		case c == '.':
			if digits == 0 || parts == 3 {
				return false
			}
			parts++
			digits, val = 0, 0
		default:
			return false
		}
	}
	return parts == 3 && digits > 0
}

// IsIPv6 checks if the provided IP is v6.
func IsIPv6(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	return err == nil && addr.Is6()
}
