// Package zonestat aggregates record-type statistics over a parsed
// zone and renders them as a fixed-width table.
package zonestat

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shuque/parse-zone/zoneparser"
)

// TypeCount holds per-type record and RRset counts.
type TypeCount struct {
	Records int
	RRsets  int
}

// Stats summarizes a record sequence. An RRset is the group of records
// sharing owner, class and type.
type Stats struct {
	Records     int
	RRsets      int
	Names       int
	Wildcards   int
	Delegations int
	ByType      map[string]TypeCount
}

// Collect computes statistics over records. zoneOrigin is used to count
// delegations (distinct NS owners other than the origin) and may be
// empty.
func Collect(records []zoneparser.Record, zoneOrigin string) *Stats {
	st := &Stats{ByType: make(map[string]TypeCount)}
	st.Records = len(records)

	rrsets := make(map[[3]string]bool)
	names := make(map[string]bool)
	delegations := make(map[string]bool)

	for _, r := range records {
		key := [3]string{r.Owner, r.Class, r.Type}
		isNewSet := !rrsets[key]
		rrsets[key] = true
		names[r.Owner] = true

		if strings.HasPrefix(r.Owner, "*.") {
			st.Wildcards++
		}
		if r.Type == "NS" && r.Owner != zoneOrigin {
			delegations[r.Owner] = true
		}

		tc := st.ByType[r.Type]
		tc.Records++
		if isNewSet {
			tc.RRsets++
		}
		st.ByType[r.Type] = tc
	}

	st.RRsets = len(rrsets)
	st.Names = len(names)
	st.Delegations = len(delegations)
	return st
}

// Write renders the statistics table to w. skipped is the number of
// lines dropped during parsing and filtering.
func Write(w io.Writer, records []zoneparser.Record, skipped int, zoneOrigin string) error {
	fmt.Fprintln(w, "### DNS Zone Statistics:")
	if zoneOrigin != "" {
		fmt.Fprintf(w, "### Zone: %s\n\n", zoneOrigin)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No DNS records found to analyze.")
		if skipped > 0 {
			fmt.Fprintf(w, "Lines skipped during parsing: %d\n", skipped)
		}
		return nil
	}

	st := Collect(records, zoneOrigin)

	fmt.Fprintf(w, "%-12s %8d\n", "Records:", st.Records)
	if skipped > 0 {
		fmt.Fprintf(w, "Lines skipped during parsing: %d\n", skipped)
	}
	fmt.Fprintf(w, "%-12s %8d\n", "RRsets:", st.RRsets)
	fmt.Fprintf(w, "%-12s %8d\n", "Names:", st.Names)
	if st.Wildcards > 0 {
		fmt.Fprintf(w, "%-12s %8d\n", "Wildcards:", st.Wildcards)
	}
	if st.Delegations > 0 {
		fmt.Fprintf(w, "%-12s %8d\n", "Delegations:", st.Delegations)
	}

	types := make([]string, 0, len(st.ByType))
	for t := range st.ByType {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Fprintln(w, "\nRecord type statistics:")
	fmt.Fprintf(w, "%-10s %8s %11s %9s %9s\n", "Type", "RR", "RR%", "RRsets", "RRset%")
	fmt.Fprintln(w, strings.Repeat("-", 51))

	for _, t := range types {
		tc := st.ByType[t]
		pct := float64(tc.Records) / float64(st.Records) * 100
		var setPct float64
		if st.RRsets > 0 {
			setPct = float64(tc.RRsets) / float64(st.RRsets) * 100
		}
		if _, err := fmt.Fprintf(w, "%-10s %8d %10.1f%% %9d %8.1f%%\n",
			t, tc.Records, pct, tc.RRsets, setPct); err != nil {
			return err
		}
	}
	return nil
}
