package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/imarsman/iso8601"
	"github.com/imarsman/iso8601/internal/config"
)

const defaultConfigFile = "iso8601.toml"

// result one JSON output line
type result struct {
	Input     string `json:"input"`
	Timestamp string `json:"timestamp,omitempty"`
	Offset    int    `json:"offset_minutes"`
	Zone      string `json:"zone,omitempty"`
	Inferred  bool   `json:"inferred"`
	Error     string `json:"error,omitempty"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("iso8601: ")

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("main: loading .env: %v", err)
	}

	os.Exit(run(os.Args[1:], os.Stdout, time.Now()))
}

func loadConfig(path string) (*config.Config, error) {
	defaultConfig := config.GetDefaultConfig()

	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return &defaultConfig, nil
		}
		path = defaultConfigFile
	}

	return config.LoadConfig(path, &defaultConfig)
}

// run parse each argument and write the result or error per line. Returns
// the process exit code.
func run(args []string, out io.Writer, now time.Time) int {
	fs := flag.NewFlagSet("iso8601", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: iso8601 [flags] date...")
		fmt.Fprintln(fs.Output(), "Converts ISO 8601 dates into timestamps.")
		fs.PrintDefaults()
	}

	var (
		configFile = fs.String("config", "", "TOML config file (default "+defaultConfigFile+" if present)")
		zone       = fs.String("zone", "", "ambient zone for inputs without an offset: IANA name, Local or CET")
		reference  = fs.String("reference", "", "reference time supplying missing dates (default now)")
		format     = fs.String("format", "", "output format: default, extended, basic or rfc3339")
		jsonOutput = fs.Bool("json", false, "output in JSON lines")
		test       bool
	)
	fs.BoolVar(&test, "t", false, "run the built-in examples")
	fs.BoolVar(&test, "test", false, "run the built-in examples")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if test {
		return runExamples(out)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Printf("run: loading config: %v", err)
		return 1
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Printf("run: reading environment: %v", err)
		return 1
	}

	// Flags win over the environment and the file
	if *zone != "" {
		cfg.Zone.Location = *zone
	}
	if *reference != "" {
		cfg.Reference.Time = *reference
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *jsonOutput {
		cfg.Output.JSON = true
	}

	provider, err := cfg.ZoneProvider()
	if err != nil {
		log.Printf("run: zone %q: %v", cfg.Zone.Location, err)
		return 1
	}
	formatter, err := cfg.Formatter()
	if err != nil {
		log.Printf("run: format %q: %v", cfg.Output.Format, err)
		return 1
	}

	p := iso8601.NewParser(provider)
	ref, err := cfg.ReferenceTime(p, now)
	if err != nil {
		log.Printf("run: reference: %v", err)
		return 1
	}

	enc := json.NewEncoder(out)
	for _, input := range fs.Args() {
		ts, err := p.ParseAt(input, ref)

		if cfg.Output.JSON {
			r := result{Input: input}
			if err != nil {
				r.Error = err.Error()
			} else {
				r.Timestamp = formatter(ts)
				r.Offset = ts.Offset
				r.Zone = ts.Zone
				r.Inferred = ts.Inferred
			}
			if err := enc.Encode(r); err != nil {
				log.Printf("run: %v", err)
				return 1
			}
			continue
		}

		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, formatter(ts))
	}

	return 0
}

func runExamples(out io.Writer) int {
	fmt.Fprintln(out, "run tests")

	failures := iso8601.CheckExamples()
	for _, f := range failures {
		fmt.Fprintln(out, "FAIL", f)
	}
	if len(failures) > 0 {
		fmt.Fprintf(out, "%d of %d examples failed\n", len(failures), len(iso8601.Examples))
		return 1
	}
	fmt.Fprintf(out, "%d examples passed\n", len(iso8601.Examples))

	return 0
}
