package zoneparser

import (
	"fmt"
	"os"
	"strings"

	"github.com/miekg/dns"
)

// debugLog enables debug output when ZONEPARSER_DEBUG is set.
var debugLog = os.Getenv("ZONEPARSER_DEBUG") != ""

// Log prints debug messages if debug logging is enabled
func Log(format string, args ...interface{}) {
	if debugLog {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// stringToTTL parses a TTL with optional DNS duration units, e.g.
// "3600", "1h", "2w3d". A bare number is seconds.
func stringToTTL(token string) (uint32, bool) {
	if token == "" {
		return 0, false
	}
	var s, i uint32
	for _, c := range token {
		switch c {
		case 's', 'S':
			s += i
			i = 0
		case 'm', 'M':
			s += i * 60
			i = 0
		case 'h', 'H':
			s += i * 60 * 60
			i = 0
		case 'd', 'D':
			s += i * 60 * 60 * 24
			i = 0
		case 'w', 'W':
			s += i * 60 * 60 * 24 * 7
			i = 0
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			i *= 10
			i += uint32(c) - '0'
		default:
			return 0, false
		}
	}
	return s + i, true
}

// qualifyName expands a relative domain name against the origin. A name
// with a trailing dot is used verbatim; "@" is the origin itself. With
// no origin in effect the name is left untouched.
func qualifyName(name, origin string) string {
	if origin == "" {
		return name
	}
	if name == "@" {
		return origin
	}
	if strings.HasSuffix(name, ".") {
		return name
	}
	if origin == "." {
		return name + "."
	}
	return name + "." + origin
}

// isTypeToken reports whether an uppercased token is an RR-type
// mnemonic, including the RFC 3597 TYPE### form.
func isTypeToken(t string) bool {
	if _, ok := dns.StringToType[t]; ok {
		return true
	}
	return strings.HasPrefix(t, "TYPE") && isDigits(t[4:])
}

// isClassToken reports whether an uppercased token is a class
// mnemonic, including the RFC 3597 CLASS### form.
func isClassToken(t string) bool {
	if _, ok := dns.StringToClass[t]; ok {
		return true
	}
	return strings.HasPrefix(t, "CLASS") && isDigits(t[5:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// unquote strips the surrounding quotes of a character-string token and
// unescapes \" and \\ within it. Unquoted tokens pass through.
func unquote(tok string) string {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return tok
	}
	s := tok[1 : len(tok)-1]
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}
