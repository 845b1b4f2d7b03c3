package zonefilter

import (
	"net"
	"testing"

	"github.com/shuque/parse-zone/zoneparser"
)

const origin = "example.com."

func testRecords() []zoneparser.Record {
	return []zoneparser.Record{
		{Owner: "example.com.", TTL: 3600, Class: "IN", Type: "SOA",
			Data: zoneparser.SOAData{PrimaryNS: "ns1.example.com.", Mbox: "admin.example.com.",
				Serial: 1, Refresh: 7200, Retry: 3600, Expire: 1209600, Minimum: 86400}},
		{Owner: "example.com.", TTL: 3600, Class: "IN", Type: "NS",
			Data: zoneparser.NSData{Target: "ns1.example.com."}},
		{Owner: "sub.example.com.", TTL: 3600, Class: "IN", Type: "NS",
			Data: zoneparser.NSData{Target: "ns1.sub.example.com."}},
		{Owner: "www.example.com.", TTL: 300, Class: "IN", Type: "A",
			Data: zoneparser.AData{Address: net.ParseIP("192.168.1.1")}},
		{Owner: "*.wild.example.com.", TTL: 300, Class: "IN", Type: "A",
			Data: zoneparser.AData{Address: net.ParseIP("192.168.1.2")}},
		{Owner: "www.example.com.", TTL: 300, Class: "IN", Type: "RRSIG",
			Data: zoneparser.OpaqueData{Fields: []string{"A", "8", "3", "300"}}},
		{Owner: "example.com.", TTL: 7200, Class: "CH", Type: "TXT",
			Data: zoneparser.TXTData{Strings: []string{"version info"}}},
	}
}

func keep(t *testing.T, cfg *Config) []zoneparser.Record {
	t.Helper()
	var out []zoneparser.Record
	for _, rec := range testRecords() {
		if cfg.Include(rec, origin) {
			out = append(out, rec)
		}
	}
	return out
}

func TestZeroConfigIncludesEverything(t *testing.T) {
	kept := keep(t, &Config{})
	if len(kept) != len(testRecords()) {
		t.Errorf("Expected all %d records, got %d", len(testRecords()), len(kept))
	}
}

func TestNoDNSSEC(t *testing.T) {
	kept := keep(t, &Config{NoDNSSEC: true})
	for _, rec := range kept {
		if rec.Type == "RRSIG" {
			t.Error("RRSIG record should have been excluded")
		}
	}
	if len(kept) != len(testRecords())-1 {
		t.Errorf("Expected %d records, got %d", len(testRecords())-1, len(kept))
	}
}

func TestDNSSECTypeSet(t *testing.T) {
	want := []string{"DNSKEY", "RRSIG", "NSEC", "NSEC3", "NSEC3PARAM", "DS", "CDNSKEY", "CDS"}
	if len(DNSSECTypes) != len(want) {
		t.Errorf("Expected %d DNSSEC types, got %d", len(want), len(DNSSECTypes))
	}
	for _, typ := range want {
		if !DNSSECTypes[typ] {
			t.Errorf("Expected %s in DNSSEC type set", typ)
		}
	}
}

func TestRRTypeAllowList(t *testing.T) {
	kept := keep(t, &Config{RRTypes: []string{"A", "ns"}})
	if len(kept) != 4 {
		t.Fatalf("Expected 4 records (2 A, 2 NS), got %d", len(kept))
	}
	for _, rec := range kept {
		if rec.Type != "A" && rec.Type != "NS" {
			t.Errorf("Unexpected type %s in allow-listed output", rec.Type)
		}
	}
}

func TestIncludeNameSubstring(t *testing.T) {
	kept := keep(t, &Config{IncludeName: "WWW"})
	if len(kept) != 2 {
		t.Fatalf("Expected 2 www records (case-insensitive), got %d", len(kept))
	}
}

func TestExcludeNameSubstring(t *testing.T) {
	kept := keep(t, &Config{ExcludeName: "www"})
	for _, rec := range kept {
		if rec.Owner == "www.example.com." {
			t.Error("www records should have been excluded")
		}
	}
}

func TestIncludeDataSubstring(t *testing.T) {
	kept := keep(t, &Config{IncludeData: "192.168.1.1"})
	if len(kept) != 1 || kept[0].Owner != "www.example.com." {
		t.Errorf("Expected only the www A record, got %+v", kept)
	}
}

func TestRegexpPatterns(t *testing.T) {
	kept := keep(t, &Config{IncludeName: `^(www|sub)\.`})
	if len(kept) != 3 {
		t.Errorf("Expected 3 records matching regexp, got %d", len(kept))
	}

	// An invalid pattern rejects rather than matches.
	kept = keep(t, &Config{IncludeName: `^(unclosed`})
	if len(kept) != 0 {
		t.Errorf("Expected invalid regexp to reject all records, got %d", len(kept))
	}
}

func TestWildcardFilter(t *testing.T) {
	kept := keep(t, &Config{Wildcard: true})
	if len(kept) != 1 || kept[0].Owner != "*.wild.example.com." {
		t.Errorf("Expected only the wildcard record, got %+v", kept)
	}
}

func TestDelegationsFilter(t *testing.T) {
	kept := keep(t, &Config{Delegations: true})
	if len(kept) != 1 {
		t.Fatalf("Expected 1 delegation record, got %d", len(kept))
	}
	if kept[0].Owner != "sub.example.com." || kept[0].Type != "NS" {
		t.Errorf("Expected the sub.example.com. NS record, got %+v", kept[0])
	}
}

func TestTTLRangeFilter(t *testing.T) {
	lo, hi := uint32(1000), uint32(5000)
	kept := keep(t, &Config{TTLMin: &lo, TTLMax: &hi})
	for _, rec := range kept {
		if rec.TTL < lo || rec.TTL > hi {
			t.Errorf("Record TTL %d outside range [%d, %d]", rec.TTL, lo, hi)
		}
	}
	if len(kept) != 3 {
		t.Errorf("Expected 3 records in TTL range, got %d", len(kept))
	}
}

func TestClassFilter(t *testing.T) {
	kept := keep(t, &Config{Class: "ch"})
	if len(kept) != 1 || kept[0].Class != "CH" {
		t.Errorf("Expected only the CH record, got %+v", kept)
	}
}

func TestCombinedFilters(t *testing.T) {
	kept := keep(t, &Config{RRTypes: []string{"A"}, ExcludeName: "wild"})
	if len(kept) != 1 || kept[0].Owner != "www.example.com." {
		t.Errorf("Expected only the www A record, got %+v", kept)
	}
}
