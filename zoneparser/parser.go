// Package zoneparser parses DNS master zone files into a sequence of
// resolved resource records. It handles comment stripping, quoted
// strings, parenthesized multi-line records, the $TTL and $ORIGIN
// directives, and the inheritance of owner name, TTL and class across
// consecutive records. Record semantics beyond rdata shape (address
// routability, zone consistency) are left to callers.
package zoneparser

import (
	"errors"
	"io"
	"os"
	"strings"
)

// NewParser creates a parser reading from the named zone file.
func NewParser(filename string) *Parser {
	return &Parser{file: filename, lastClass: "IN"}
}

// NewReaderParser creates a parser reading zone text from r. The name
// is used in error messages only.
func NewReaderParser(r io.Reader, name string) *Parser {
	return &Parser{file: name, src: r, lastClass: "IN"}
}

// SetSkipMalformed switches the parser from fail-fast to lenient mode:
// record lines that fail resolution or rdata parsing are counted in
// Zone.Skipped instead of aborting the pass. Structural lexing errors
// and bad directives still abort.
func (p *Parser) SetSkipMalformed(v bool) {
	p.skipMalformed = v
}

// Parse runs one forward pass over the input and returns the parsed
// zone. A Parser is good for a single pass.
func (p *Parser) Parse() (*Zone, error) {
	src := p.src
	if src == nil {
		f, err := os.Open(p.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	Log("starting parse of %s", p.file)

	lx := newLexer(src, p.file)
	for {
		ll, err := lx.next()
		if err != nil {
			return nil, err
		}
		if ll == nil {
			break
		}
		Log("logical line %d: %v", ll.num, ll.tokens)

		if strings.HasPrefix(ll.tokens[0], "$") {
			if err := p.directive(ll); err != nil {
				return nil, err
			}
			continue
		}

		rec, err := p.resolve(ll)
		if err != nil {
			if p.skipMalformed && (errors.Is(err, ErrResolution) || errors.Is(err, ErrRdata)) {
				Log("skipping malformed line %d: %v", ll.num, err)
				p.zone.Skipped++
				continue
			}
			return nil, err
		}
		p.zone.Records = append(p.zone.Records, *rec)
	}

	p.zone.Origin = p.zoneOrigin
	if p.haveTTL {
		p.zone.DefaultTTL = p.defaultTTL
	}
	Log("finished parse of %s: %d records", p.file, len(p.zone.Records))
	return &p.zone, nil
}

// directive applies a $TTL or $ORIGIN control line to the zone state.
// The format has no extensibility contract, so anything else is an
// error rather than silently ignored.
func (p *Parser) directive(ll *logicalLine) error {
	name := strings.ToUpper(ll.tokens[0])
	switch name {
	case "$TTL":
		if len(ll.tokens) != 2 {
			return parseErrorf(p.file, ll.num, ErrDirective, "$TTL takes exactly one value")
		}
		ttl, ok := stringToTTL(ll.tokens[1])
		if !ok {
			return parseErrorf(p.file, ll.num, ErrDirective, "invalid $TTL value %q", ll.tokens[1])
		}
		p.defaultTTL = ttl
		p.haveTTL = true
	case "$ORIGIN":
		if len(ll.tokens) != 2 {
			return parseErrorf(p.file, ll.num, ErrDirective, "$ORIGIN takes exactly one name")
		}
		origin := ll.tokens[1]
		if !strings.HasSuffix(origin, ".") {
			if p.origin == "" {
				return parseErrorf(p.file, ll.num, ErrDirective, "relative $ORIGIN %q with no previous origin", origin)
			}
			origin = qualifyName(origin, p.origin)
		}
		p.origin = origin
		p.zoneOrigin = origin
	default:
		return parseErrorf(p.file, ll.num, ErrDirective, "unknown directive %s", ll.tokens[0])
	}
	return nil
}

// resolve turns one logical record line into a Record, filling in the
// owner, TTL and class from the zone state where the line omits them.
func (p *Parser) resolve(ll *logicalLine) (*Record, error) {
	toks := ll.tokens

	var owner string
	if ll.blankOwner {
		// Blank owner field: continuation of the previous record's
		// owner, exactly as resolved, never re-expanded.
		if p.lastOwner == "" {
			return nil, parseErrorf(p.file, ll.num, ErrResolution, "blank owner with no previous record")
		}
		owner = p.lastOwner
	} else {
		owner = toks[0]
		toks = toks[1:]
		if owner == "@" && p.origin == "" {
			return nil, parseErrorf(p.file, ll.num, ErrResolution, "@ owner with no origin in effect")
		}
		owner = qualifyName(owner, p.origin)
	}

	// The TTL and class may appear in either order between the owner
	// and the type; the first type mnemonic ends the header. A token
	// that is neither is taken as an unrecognized type.
	var (
		ttl     uint32
		haveTTL bool
		class   string
		rrtype  string
	)
	i := 0
	for i < len(toks) && rrtype == "" {
		t := strings.ToUpper(toks[i])
		switch {
		case isTypeToken(t):
			rrtype = t
		case class == "" && isClassToken(t):
			class = t
		default:
			if v, ok := stringToTTL(toks[i]); ok && !haveTTL {
				ttl = v
				haveTTL = true
			} else {
				rrtype = t
			}
		}
		i++
	}
	if rrtype == "" {
		return nil, parseErrorf(p.file, ll.num, ErrResolution, "missing record type")
	}
	if class == "" {
		class = p.lastClass
	}

	data, err := p.buildRData(rrtype, toks[i:], ll.num)
	if err != nil {
		return nil, err
	}

	if soa, ok := data.(SOAData); ok {
		p.soaMinimum = soa.Minimum
		p.haveSOAMin = true
		if !p.seenSOA {
			p.seenSOA = true
			if p.zoneOrigin == "" {
				p.zoneOrigin = owner
			}
		}
	}

	if !haveTTL {
		switch {
		case p.haveTTL:
			ttl = p.defaultTTL
		case p.haveSOAMin:
			// The master-file fallback of last resort, covering the
			// SOA's own minimum for the SOA line itself.
			ttl = p.soaMinimum
		default:
			return nil, parseErrorf(p.file, ll.num, ErrResolution, "cannot determine TTL: no explicit TTL, $TTL or SOA minimum")
		}
	}

	p.lastOwner = owner
	p.lastClass = class

	return &Record{
		Owner: owner,
		TTL:   ttl,
		Class: class,
		Type:  rrtype,
		Data:  data,
		Line:  ll.num,
	}, nil
}
