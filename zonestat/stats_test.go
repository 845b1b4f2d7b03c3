package zonestat

import (
	"bytes"
	"net"
	"strings"
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
		{Owner: "example.com.", TTL: 3600, Class: "IN", Type: "NS",
			Data: zoneparser.NSData{Target: "ns2.example.com."}},
		{Owner: "sub.example.com.", TTL: 3600, Class: "IN", Type: "NS",
			Data: zoneparser.NSData{Target: "ns1.sub.example.com."}},
		{Owner: "www.example.com.", TTL: 300, Class: "IN", Type: "A",
			Data: zoneparser.AData{Address: net.ParseIP("192.168.1.1")}},
		{Owner: "www.example.com.", TTL: 300, Class: "IN", Type: "A",
			Data: zoneparser.AData{Address: net.ParseIP("192.168.1.2")}},
		{Owner: "*.wild.example.com.", TTL: 300, Class: "IN", Type: "A",
			Data: zoneparser.AData{Address: net.ParseIP("192.168.1.3")}},
	}
}

func TestCollect(t *testing.T) {
	st := Collect(testRecords(), origin)

	if st.Records != 7 {
		t.Errorf("Expected 7 records, got %d", st.Records)
	}
	// RRsets: SOA@origin, NS@origin, NS@sub, A@www, A@wildcard = 5
	if st.RRsets != 5 {
		t.Errorf("Expected 5 RRsets, got %d", st.RRsets)
	}
	// Names: example.com., sub, www, *.wild = 4
	if st.Names != 4 {
		t.Errorf("Expected 4 distinct names, got %d", st.Names)
	}
	if st.Wildcards != 1 {
		t.Errorf("Expected 1 wildcard record, got %d", st.Wildcards)
	}
	// Delegations: distinct NS owners other than the origin
	if st.Delegations != 1 {
		t.Errorf("Expected 1 delegation name, got %d", st.Delegations)
	}

	ns := st.ByType["NS"]
	if ns.Records != 3 || ns.RRsets != 2 {
		t.Errorf("Expected NS counts 3/2, got %d/%d", ns.Records, ns.RRsets)
	}
	a := st.ByType["A"]
	if a.Records != 3 || a.RRsets != 2 {
		t.Errorf("Expected A counts 3/2, got %d/%d", a.Records, a.RRsets)
	}
	soa := st.ByType["SOA"]
	if soa.Records != 1 || soa.RRsets != 1 {
		t.Errorf("Expected SOA counts 1/1, got %d/%d", soa.Records, soa.RRsets)
	}
}

func TestCollectEmpty(t *testing.T) {
	st := Collect(nil, "")
	if st.Records != 0 || st.RRsets != 0 || st.Names != 0 {
		t.Errorf("Expected zero stats for empty input, got %+v", st)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testRecords(), 2, origin); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"### DNS Zone Statistics:",
		"### Zone: example.com.",
		"Lines skipped during parsing: 2",
		"Record type statistics:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, output:\n%s", want, out)
		}
	}

	if !strings.Contains(out, "Records:            7") {
		t.Errorf("Expected record count line, output:\n%s", out)
	}
	if !strings.Contains(out, "RRsets:             5") {
		t.Errorf("Expected RRset count line, output:\n%s", out)
	}

	// Type rows are sorted and carry percentages.
	aIdx := strings.Index(out, "\nA ")
	nsIdx := strings.Index(out, "\nNS ")
	soaIdx := strings.Index(out, "\nSOA ")
	if aIdx == -1 || nsIdx == -1 || soaIdx == -1 || !(aIdx < nsIdx && nsIdx < soaIdx) {
		t.Errorf("Expected sorted type rows A, NS, SOA, output:\n%s", out)
	}
	if !strings.Contains(out, "42.9%") {
		t.Errorf("Expected A/NS share of 42.9%%, output:\n%s", out)
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, 0, ""); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No DNS records found to analyze.") {
		t.Errorf("Expected empty-zone message, got %q", buf.String())
	}
}
