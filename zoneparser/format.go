package zoneparser

import (
	"fmt"
	"io"
)

// FormatRecord renders one record in the fixed-width column layout
// used for record listings: owner, TTL, class, type, data.
func FormatRecord(r Record) string {
	return fmt.Sprintf("%-30s %-8d %-4s %-8s %s", r.Owner, r.TTL, r.Class, r.Type, r.Data.String())
}

// WriteRecords prints records one per line to w.
func WriteRecords(w io.Writer, records []Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No DNS records found in the zone file.")
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintln(w, FormatRecord(r)); err != nil {
			return err
		}
	}
	return nil
}
