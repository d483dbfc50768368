package vpnhost

import (
	"bytes"
	"strings"

	vpnnet "github.com/Control-D-Inc/vpnhost/internal/net"
)

func isalphanum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// ValidHostname reports whether host is usable as a single hostname label.
//
// A valid label is non-empty, does not start with a hyphen and consists only
// of ASCII letters, digits and hyphens. A trailing hyphen is accepted, and so
// is any length; callers bound the input before checking it. Dots are
// rejected, so a FQDN must go through StripDomain first.
func ValidHostname(host string) bool {
	if host == "" || host[0] == '-' {
		return false
	}
	for i := 0; i < len(host); i++ {
		if c := host[i]; !isalphanum(c) && c != '-' {
			return false
		}
	}
	return true
}

// StripDomain returns host without its domain part, i.e. everything from the
// first dot onward is dropped: "host.example.com" becomes "host".
//
// host is returned unchanged if it is empty, starts with a dot, contains no
// dot, or is an IPv4 address as a whole.
func StripDomain(host string) string {
	label, _ := SplitDomain(host)
	return label
}

// SplitDomain is like StripDomain, but also returns what follows the first
// dot, without that dot. domain is empty when host has no dot to cut at, and
// also when host ends with its only dot: "host." yields "host" and "".
func SplitDomain(host string) (label, domain string) {
	if host == "" || host[0] == '.' {
		return host, ""
	}
	// Dots in an IP address are not domain separators.
	if vpnnet.IsIPv4(host) {
		return host, ""
	}
	label, domain, _ = strings.Cut(host, ".")
	return label, domain
}

// StripDomainBytes performs StripDomain on a caller owned buffer, without
// copying. The result is always a prefix of buf.
//
// buf is treated as a C string: content from the first NUL byte onward is
// ignored and never part of the result. A nil buf returns nil.
func StripDomainBytes(buf []byte) []byte {
	if buf == nil {
		return nil
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	if len(buf) == 0 || buf[0] == '.' {
		return buf
	}
	if vpnnet.IsIPv4(buf) {
		return buf
	}
	if i := bytes.IndexByte(buf, '.'); i >= 0 {
		return buf[:i]
	}
	return buf
}
