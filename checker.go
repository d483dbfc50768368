package vpnhost

import (
	"context"

	"github.com/miekg/dns"

	vpnnet "github.com/Control-D-Inc/vpnhost/internal/net"
)

// MaxHostnameLen is the number of bytes of a client hostname the VPN server
// keeps; anything beyond is cut before checking.
const MaxHostnameLen = 255

// Result describes the outcome of checking a client hostname.
type Result struct {
	// Input is the hostname as supplied by the client.
	Input string
	// Hostname is the label to use, the fallback if the label was rejected
	// and a fallback is configured, or empty.
	Hostname string
	// Domain is the stripped domain in canonical form, e.g "example.com.".
	Domain    string
	Valid     bool
	IPv4      bool
	Truncated bool
}

// Checker checks client supplied hostnames. It is safe for concurrent use.
type Checker struct {
	cfg HostnameConfig
}

// NewChecker returns a Checker for the given config. A non-positive or too
// large MaxLength is replaced by MaxHostnameLen.
func NewChecker(cfg HostnameConfig) *Checker {
	if cfg.MaxLength <= 0 || cfg.MaxLength > MaxHostnameLen {
		cfg.MaxLength = MaxHostnameLen
	}
	return &Checker{cfg: cfg}
}

var defaultChecker = NewChecker(DefaultConfig().Hostname)

// SanitizeHostname checks raw using the default config. It returns the
// label to use and whether raw was accepted.
func SanitizeHostname(raw string) (string, bool) {
	res := defaultChecker.Check(context.Background(), raw)
	return res.Hostname, res.Valid
}

// Check truncates, strips and validates raw.
func (c *Checker) Check(ctx context.Context, raw string) Result {
	res := Result{Input: raw}
	host := raw
	if len(host) > c.cfg.MaxLength {
		host = host[:c.cfg.MaxLength]
		res.Truncated = true
	}
	if c.cfg.StripDomain {
		var domain string
		host, domain = SplitDomain(host)
		if domain != "" {
			res.Domain = dns.CanonicalName(domain)
		}
	}

	res.IPv4 = vpnnet.IsIPv4(host)

	logger := ProxyLogger.Load()
	res.Valid = ValidHostname(host)
	switch {
	case res.Valid:
		res.Hostname = host
		statsHostnameChecks.WithLabelValues(resultAccepted).Inc()
		Log(ctx, logger.Debug(), "accepted client hostname %q as %q", raw, host)
		return res
	case c.cfg.Fallback != "":
		res.Hostname = c.cfg.Fallback
		statsHostnameChecks.WithLabelValues(resultFallback).Inc()
	default:
		statsHostnameChecks.WithLabelValues(resultRejected).Inc()
	}
	Log(ctx, logger.Info(), "rejected client hostname %q, fallback: %q", raw, res.Hostname)
	return res
}
