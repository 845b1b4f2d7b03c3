package zoneparser

import (
	"fmt"
	"io"
	"net"
	"strings"
)

// Record is one resource record from a zone file, with owner, TTL and
// class fully resolved against the zone state in effect on its line.
type Record struct {
	Owner string
	TTL   uint32
	Class string
	Type  string
	Data  RData
	Line  int // physical line the record began on
}

// RData is the type-specific data of a record. Each supported RR type
// has its own concrete struct; unrecognized types use OpaqueData.
type RData interface {
	String() string
}

// AData holds an IPv4 address
type AData struct {
	Address net.IP
}

// AAAAData holds an IPv6 address
type AAAAData struct {
	Address net.IP
}

// NSData holds a name server target
type NSData struct {
	Target string
}

// CNAMEData holds a canonical name target
type CNAMEData struct {
	Target string
}

// PTRData holds a pointer target
type PTRData struct {
	Target string
}

// MXData holds a mail exchanger preference and target
type MXData struct {
	Preference uint16
	Exchange   string
}

// TXTData holds one or more character-strings
type TXTData struct {
	Strings []string
}

// SPFData holds sender policy text, same shape as TXT
type SPFData struct {
	Strings []string
}

// SOAData holds the seven start-of-authority fields
type SOAData struct {
	PrimaryNS string
	Mbox      string
	Serial    uint32
	Refresh   uint32
	Retry     uint32
	Expire    uint32
	Minimum   uint32
}

// SRVData holds a service location
type SRVData struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

// CAAData holds a certification authority authorization
type CAAData struct {
	Flags uint8
	Tag   string
	Value string
}

// HINFOData holds host information
type HINFOData struct {
	CPU string
	OS  string
}

// NAPTRData holds a naming authority pointer
type NAPTRData struct {
	Order       uint16
	Preference  uint16
	Flags       string
	Service     string
	Regexp      string
	Replacement string
}

// OpaqueData carries the raw rdata tokens of an unrecognized RR type.
// Unknown types are passed through rather than rejected so that
// filtering and statistics layers still see them.
type OpaqueData struct {
	Fields []string
}

func (d AData) String() string     { return d.Address.String() }
func (d AAAAData) String() string  { return d.Address.String() }
func (d NSData) String() string    { return d.Target }
func (d CNAMEData) String() string { return d.Target }
func (d PTRData) String() string   { return d.Target }

func (d MXData) String() string {
	return fmt.Sprintf("%d %s", d.Preference, d.Exchange)
}

func (d TXTData) String() string { return quoteStrings(d.Strings) }
func (d SPFData) String() string { return quoteStrings(d.Strings) }

func (d SOAData) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		d.PrimaryNS, d.Mbox, d.Serial, d.Refresh, d.Retry, d.Expire, d.Minimum)
}

func (d SRVData) String() string {
	return fmt.Sprintf("%d %d %d %s", d.Priority, d.Weight, d.Port, d.Target)
}

func (d CAAData) String() string {
	return fmt.Sprintf("%d %s %q", d.Flags, d.Tag, d.Value)
}

func (d HINFOData) String() string {
	return fmt.Sprintf("%q %q", d.CPU, d.OS)
}

func (d NAPTRData) String() string {
	return fmt.Sprintf("%d %d %q %q %q %s",
		d.Order, d.Preference, d.Flags, d.Service, d.Regexp, d.Replacement)
}

func (d OpaqueData) String() string { return strings.Join(d.Fields, " ") }

func quoteStrings(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = `"` + s + `"`
	}
	return strings.Join(quoted, " ")
}

// Zone is the result of one parse pass.
type Zone struct {
	Records    []Record
	Origin     string // first $ORIGIN, or failing that the first SOA's owner
	DefaultTTL uint32 // last $TTL value, 0 if none was seen
	Skipped    int    // malformed record lines skipped (lenient mode only)
}

// Parser holds the zone state for a single parse pass. State lives on
// the Parser value, so independent parses never share anything.
type Parser struct {
	file string
	src  io.Reader

	origin     string // current $ORIGIN, for relative-name expansion
	zoneOrigin string // reported zone origin (see Zone.Origin)
	defaultTTL uint32
	haveTTL    bool
	soaMinimum uint32
	haveSOAMin bool
	seenSOA    bool
	lastOwner  string
	lastClass  string

	skipMalformed bool

	zone Zone
}
