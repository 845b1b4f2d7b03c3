// Package zonefilter selects records from a parsed zone by type, name,
// data, TTL and class criteria.
package zonefilter

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/miekg/dns"

	"github.com/shuque/parse-zone/zoneparser"
)

// DNSSECTypes is the fixed set of DNSSEC-related record types excluded
// by the NoDNSSEC filter.
var DNSSECTypes = map[string]bool{
	dns.TypeToString[dns.TypeDNSKEY]:     true,
	dns.TypeToString[dns.TypeRRSIG]:      true,
	dns.TypeToString[dns.TypeNSEC]:       true,
	dns.TypeToString[dns.TypeNSEC3]:      true,
	dns.TypeToString[dns.TypeNSEC3PARAM]: true,
	dns.TypeToString[dns.TypeDS]:         true,
	dns.TypeToString[dns.TypeCDNSKEY]:    true,
	dns.TypeToString[dns.TypeCDS]:        true,
}

// Config holds the filter criteria. The zero value includes everything.
type Config struct {
	NoDNSSEC    bool     // drop DNSSEC-related types
	RRTypes     []string // allow-list of type mnemonics, empty = all
	IncludeName string   // owner must match
	IncludeData string   // data must match
	ExcludeName string   // owner must not match
	ExcludeData string   // data must not match
	Wildcard    bool     // only owners beginning with *.
	Delegations bool     // only NS records whose owner is not the zone origin
	TTLMin      *uint32  // inclusive lower TTL bound
	TTLMax      *uint32  // inclusive upper TTL bound
	Class       string   // only this class
}

// Include reports whether a record passes every configured criterion.
// zoneOrigin is used for delegation filtering and may be empty.
func (c *Config) Include(rec zoneparser.Record, zoneOrigin string) bool {
	if c.NoDNSSEC && DNSSECTypes[rec.Type] {
		return false
	}

	if len(c.RRTypes) > 0 {
		allowed := false
		for _, t := range c.RRTypes {
			if strings.EqualFold(strings.TrimSpace(t), rec.Type) {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	data := rec.Data.String()
	if c.IncludeName != "" && !match(c.IncludeName, rec.Owner) {
		return false
	}
	if c.ExcludeName != "" && match(c.ExcludeName, rec.Owner) {
		return false
	}
	if c.IncludeData != "" && !match(c.IncludeData, data) {
		return false
	}
	if c.ExcludeData != "" && match(c.ExcludeData, data) {
		return false
	}

	if c.Wildcard && !strings.HasPrefix(rec.Owner, "*.") {
		return false
	}

	if c.Delegations {
		if rec.Type != "NS" {
			return false
		}
		if zoneOrigin != "" && rec.Owner == zoneOrigin {
			return false
		}
	}

	if c.TTLMin != nil && rec.TTL < *c.TTLMin {
		return false
	}
	if c.TTLMax != nil && rec.TTL > *c.TTLMax {
		return false
	}

	if c.Class != "" && !strings.EqualFold(rec.Class, c.Class) {
		return false
	}

	return true
}

// match is case-insensitive substring containment, or a regular
// expression match when the pattern begins with "^". An invalid pattern
// rejects the subject with a warning.
func match(pattern, subject string) bool {
	if strings.HasPrefix(pattern, "^") {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid pattern %q: %v\n", pattern, err)
			return false
		}
		return re.MatchString(subject)
	}
	return strings.Contains(strings.ToLower(subject), strings.ToLower(pattern))
}
