package zoneparser

import (
	"net"
	"strconv"
)

// buildRData interprets the rdata tokens for one record. Dispatch is by
// type mnemonic; each supported type has a fixed or minimum arity.
// Relative names inside rdata expand against the origin the same way
// owner names do.
func (p *Parser) buildRData(rrtype string, data []string, line int) (RData, error) {
	switch rrtype {
	case "A":
		if len(data) != 1 {
			return nil, p.shapeErrorf(line, "A record takes 1 field, got %d", len(data))
		}
		ip := net.ParseIP(data[0])
		if ip == nil || ip.To4() == nil {
			return nil, p.shapeErrorf(line, "invalid A record address %q", data[0])
		}
		return AData{Address: ip}, nil

	case "AAAA":
		if len(data) != 1 {
			return nil, p.shapeErrorf(line, "AAAA record takes 1 field, got %d", len(data))
		}
		ip := net.ParseIP(data[0])
		if ip == nil || ip.To4() != nil {
			return nil, p.shapeErrorf(line, "invalid AAAA record address %q", data[0])
		}
		return AAAAData{Address: ip}, nil

	case "NS":
		if len(data) != 1 {
			return nil, p.shapeErrorf(line, "NS record takes 1 field, got %d", len(data))
		}
		return NSData{Target: qualifyName(data[0], p.origin)}, nil

	case "CNAME":
		if len(data) != 1 {
			return nil, p.shapeErrorf(line, "CNAME record takes 1 field, got %d", len(data))
		}
		return CNAMEData{Target: qualifyName(data[0], p.origin)}, nil

	case "PTR":
		if len(data) != 1 {
			return nil, p.shapeErrorf(line, "PTR record takes 1 field, got %d", len(data))
		}
		return PTRData{Target: qualifyName(data[0], p.origin)}, nil

	case "MX":
		if len(data) != 2 {
			return nil, p.shapeErrorf(line, "MX record takes 2 fields, got %d", len(data))
		}
		pref, err := strconv.ParseUint(data[0], 10, 16)
		if err != nil {
			return nil, p.shapeErrorf(line, "invalid MX preference %q", data[0])
		}
		return MXData{
			Preference: uint16(pref),
			Exchange:   qualifyName(data[1], p.origin),
		}, nil

	case "TXT":
		ss, err := p.charStrings(data, line, "TXT")
		if err != nil {
			return nil, err
		}
		return TXTData{Strings: ss}, nil

	case "SPF":
		ss, err := p.charStrings(data, line, "SPF")
		if err != nil {
			return nil, err
		}
		return SPFData{Strings: ss}, nil

	case "SOA":
		if len(data) != 7 {
			return nil, p.shapeErrorf(line, "SOA record takes 7 fields, got %d", len(data))
		}
		serial, err := strconv.ParseUint(data[2], 10, 32)
		if err != nil {
			return nil, p.shapeErrorf(line, "invalid SOA serial %q", data[2])
		}
		var timers [4]uint32
		names := [4]string{"refresh", "retry", "expire", "minimum"}
		for i, tok := range data[3:] {
			v, ok := stringToTTL(tok)
			if !ok {
				return nil, p.shapeErrorf(line, "invalid SOA %s %q", names[i], tok)
			}
			timers[i] = v
		}
		return SOAData{
			PrimaryNS: qualifyName(data[0], p.origin),
			Mbox:      qualifyName(data[1], p.origin),
			Serial:    uint32(serial),
			Refresh:   timers[0],
			Retry:     timers[1],
			Expire:    timers[2],
			Minimum:   timers[3],
		}, nil

	case "SRV":
		if len(data) != 4 {
			return nil, p.shapeErrorf(line, "SRV record takes 4 fields, got %d", len(data))
		}
		var nums [3]uint16
		names := [3]string{"priority", "weight", "port"}
		for i, tok := range data[:3] {
			v, err := strconv.ParseUint(tok, 10, 16)
			if err != nil {
				return nil, p.shapeErrorf(line, "invalid SRV %s %q", names[i], tok)
			}
			nums[i] = uint16(v)
		}
		return SRVData{
			Priority: nums[0],
			Weight:   nums[1],
			Port:     nums[2],
			Target:   qualifyName(data[3], p.origin),
		}, nil

	case "CAA":
		if len(data) != 3 {
			return nil, p.shapeErrorf(line, "CAA record takes 3 fields, got %d", len(data))
		}
		flags, err := strconv.ParseUint(data[0], 10, 8)
		if err != nil {
			return nil, p.shapeErrorf(line, "invalid CAA flags %q", data[0])
		}
		return CAAData{
			Flags: uint8(flags),
			Tag:   data[1],
			Value: unquote(data[2]),
		}, nil

	case "HINFO":
		if len(data) != 2 {
			return nil, p.shapeErrorf(line, "HINFO record takes 2 fields, got %d", len(data))
		}
		return HINFOData{CPU: unquote(data[0]), OS: unquote(data[1])}, nil

	case "NAPTR":
		if len(data) != 6 {
			return nil, p.shapeErrorf(line, "NAPTR record takes 6 fields, got %d", len(data))
		}
		order, err := strconv.ParseUint(data[0], 10, 16)
		if err != nil {
			return nil, p.shapeErrorf(line, "invalid NAPTR order %q", data[0])
		}
		pref, err := strconv.ParseUint(data[1], 10, 16)
		if err != nil {
			return nil, p.shapeErrorf(line, "invalid NAPTR preference %q", data[1])
		}
		return NAPTRData{
			Order:       uint16(order),
			Preference:  uint16(pref),
			Flags:       unquote(data[2]),
			Service:     unquote(data[3]),
			Regexp:      unquote(data[4]),
			Replacement: qualifyName(data[5], p.origin),
		}, nil

	default:
		// Unknown type: keep the raw tokens so consumers still see it.
		fields := make([]string, len(data))
		copy(fields, data)
		return OpaqueData{Fields: fields}, nil
	}
}

func (p *Parser) charStrings(data []string, line int, rrtype string) ([]string, error) {
	if len(data) < 1 {
		return nil, p.shapeErrorf(line, "%s record takes at least 1 character-string", rrtype)
	}
	ss := make([]string, len(data))
	for i, tok := range data {
		ss[i] = unquote(tok)
	}
	return ss, nil
}

func (p *Parser) shapeErrorf(line int, format string, args ...interface{}) *ParseError {
	return parseErrorf(p.file, line, ErrRdata, format, args...)
}
