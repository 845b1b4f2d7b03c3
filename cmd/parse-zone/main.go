package main

//
// parse-zone - parse, filter and summarize DNS master zone files
//
// parse-zone reads a zone file (or standard input) and prints the
// records and/or record-type statistics after applying the requested
// filters. Filter and output settings may also come from a YAML preset
// file; flags given on the command line take precedence over it.
//
// With -watch the zone file is re-parsed and re-emitted whenever it
// changes on disk.
//

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/shuque/parse-zone/config"
	"github.com/shuque/parse-zone/zonefilter"
	"github.com/shuque/parse-zone/zoneparser"
	"github.com/shuque/parse-zone/zonestat"
)

const version = "0.1.0"

func main() {
	log.SetFlags(0)

	showVersion := flag.Bool("version", false, "Show version and exit")
	printRecords := flag.Bool("printrecords", false, "Print the (relevant) DNS records in the zone")
	stats := flag.Bool("stats", false, "Print DNS record type statistics")
	noDNSSEC := flag.Bool("no-dnssec", false, "Exclude DNSSEC-related records")
	rrTypes := flag.String("rrtypes", "", "Comma-separated list of record types to include (e.g., A,AAAA,MX)")
	includeName := flag.String("includename", "", "Include records with names containing string (case insensitive)")
	includeData := flag.String("includedata", "", "Include records with data containing string (case insensitive)")
	excludeName := flag.String("excludename", "", "Exclude records with names containing string (case insensitive)")
	excludeData := flag.String("excludedata", "", "Exclude records with data containing string (case insensitive)")
	wildcard := flag.Bool("wildcard", false, "Only process wildcard DNS records (names starting with *.)")
	delegations := flag.Bool("delegations", false, "Only process delegation records (NS records not for zone origin)")
	ttlMin := flag.Int("ttl-min", -1, "Minimum TTL value (inclusive) for filtering records")
	ttlMax := flag.Int("ttl-max", -1, "Maximum TTL value (inclusive) for filtering records")
	class := flag.String("class", "", "Filter records by class (e.g., IN, CH, HS)")
	skipMalformed := flag.Bool("skip-malformed", false, "Skip malformed record lines with a diagnostic instead of aborting")
	configPath := flag.String("config", "", "Path to YAML preset file for filters and output")
	watch := flag.Bool("watch", false, "Re-parse and re-emit whenever the zone file changes")
	flag.Parse()

	if *showVersion {
		fmt.Printf("parse-zone %s\n", version)
		return
	}

	args := flag.Args()
	if len(args) > 1 {
		log.Fatalf("Usage: parse-zone [options] [zonefile]")
	}
	var zonefile string
	if len(args) == 1 {
		zonefile = args[0]
	}

	cfg := &config.Config{}
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	// Flags given on the command line override preset values.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["printrecords"] {
		cfg.Output.PrintRecords = *printRecords
	}
	if set["stats"] {
		cfg.Output.Stats = *stats
	}
	if set["no-dnssec"] {
		cfg.Filters.NoDNSSEC = *noDNSSEC
	}
	if set["rrtypes"] {
		cfg.Filters.RRTypes = strings.Split(*rrTypes, ",")
	}
	if set["includename"] {
		cfg.Filters.IncludeName = *includeName
	}
	if set["includedata"] {
		cfg.Filters.IncludeData = *includeData
	}
	if set["excludename"] {
		cfg.Filters.ExcludeName = *excludeName
	}
	if set["excludedata"] {
		cfg.Filters.ExcludeData = *excludeData
	}
	if set["wildcard"] {
		cfg.Filters.Wildcard = *wildcard
	}
	if set["delegations"] {
		cfg.Filters.Delegations = *delegations
	}
	if set["ttl-min"] && *ttlMin >= 0 {
		v := uint32(*ttlMin)
		cfg.Filters.TTLMin = &v
	}
	if set["ttl-max"] && *ttlMax >= 0 {
		v := uint32(*ttlMax)
		cfg.Filters.TTLMax = &v
	}
	if set["class"] {
		cfg.Filters.Class = *class
	}
	if set["skip-malformed"] {
		cfg.SkipMalformed = *skipMalformed
	}

	if *watch {
		if zonefile == "" {
			log.Fatalf("Error: -watch requires a zone file argument")
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := watchZone(ctx, zonefile, cfg); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	if err := run(zonefile, cfg); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run performs one parse-filter-emit pass.
func run(zonefile string, cfg *config.Config) error {
	var parser *zoneparser.Parser
	if zonefile == "" {
		parser = zoneparser.NewReaderParser(os.Stdin, "<stdin>")
	} else {
		parser = zoneparser.NewParser(zonefile)
	}
	if cfg.SkipMalformed {
		parser.SetSkipMalformed(true)
	}

	zone, err := parser.Parse()
	if err != nil {
		return err
	}

	fc := filterConfig(cfg)
	var kept []zoneparser.Record
	dropped := 0
	for _, rec := range zone.Records {
		if fc.Include(rec, zone.Origin) {
			kept = append(kept, rec)
		} else {
			dropped++
		}
	}

	if cfg.Output.PrintRecords {
		if err := zoneparser.WriteRecords(os.Stdout, kept); err != nil {
			return err
		}
	}
	if cfg.Output.Stats {
		if cfg.Output.PrintRecords {
			fmt.Println()
		}
		if err := zonestat.Write(os.Stdout, kept, zone.Skipped+dropped, zone.Origin); err != nil {
			return err
		}
	}
	return nil
}

// watchZone runs a pass now and again on every change to the zone
// file, until the context is canceled. The watch is on the containing
// directory so editors that replace the file are still seen.
func watchZone(ctx context.Context, zonefile string, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	absTarget, err := filepath.Abs(zonefile)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(absTarget)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(absTarget), err)
	}

	if err := run(zonefile, cfg); err != nil {
		log.Printf("Error: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			absEvent, err := filepath.Abs(event.Name)
			if err != nil || absEvent != absTarget {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if err := run(zonefile, cfg); err != nil {
					log.Printf("Error: %v", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v", err)
		}
	}
}

func filterConfig(cfg *config.Config) *zonefilter.Config {
	return &zonefilter.Config{
		NoDNSSEC:    cfg.Filters.NoDNSSEC,
		RRTypes:     cfg.Filters.RRTypes,
		IncludeName: cfg.Filters.IncludeName,
		IncludeData: cfg.Filters.IncludeData,
		ExcludeName: cfg.Filters.ExcludeName,
		ExcludeData: cfg.Filters.ExcludeData,
		Wildcard:    cfg.Filters.Wildcard,
		Delegations: cfg.Filters.Delegations,
		TTLMin:      cfg.Filters.TTLMin,
		TTLMax:      cfg.Filters.TTLMax,
		Class:       cfg.Filters.Class,
	}
}
