// Command ls-hjd converts Julian Dates of variable-star observations to
// Heliocentric Julian Dates.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
	"golang.org/x/term"

	"github.com/litescript/ls-hjd/internal/astro"
	"github.com/litescript/ls-hjd/internal/calendar"
	"github.com/litescript/ls-hjd/internal/coords"
	"github.com/litescript/ls-hjd/internal/hjd"
	"github.com/litescript/ls-hjd/internal/logging"
	"github.com/litescript/ls-hjd/internal/obs"
	"github.com/litescript/ls-hjd/internal/ui"
	"github.com/litescript/ls-hjd/internal/version"
)

const (
	minWorkers = 1
	maxWorkers = 256
)

// config holds the parsed command line.
type config struct {
	ra, dec  string
	epoch    string
	jd       string
	in       string
	out      string
	format   string
	flavour  string
	target   string
	workers  int
	logLevel string
	tui      bool
	showVer  bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("ls-hjd", flag.ContinueOnError)
	fs.StringVar(&cfg.ra, "ra", "", "Target right ascension (degrees or h:m:s)")
	fs.StringVar(&cfg.dec, "dec", "", "Target declination (degrees or d:m:s)")
	fs.StringVar(&cfg.epoch, "epoch", "J2000", "Coordinate epoch (J2000, B1950)")
	fs.StringVar(&cfg.jd, "jd", "", "Convert a single Julian Date")
	fs.StringVar(&cfg.in, "in", "-", "Observation file (use - for stdin)")
	fs.StringVar(&cfg.out, "out", "-", "Output file (use - for stdout)")
	fs.StringVar(&cfg.format, "format", "table", "Output format (table, csv, json)")
	fs.StringVar(&cfg.flavour, "flavour", "JD", "Time system of input times (JD, HJD)")
	fs.StringVar(&cfg.target, "target", "", "Target name for table and JSON output")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "Conversion workers")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.tui, "tui", false, "Start the interactive calculator")
	fs.BoolVar(&cfg.showVer, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.workers < minWorkers {
		cfg.workers = minWorkers
	} else if cfg.workers > maxWorkers {
		cfg.workers = maxWorkers
	}
	switch cfg.format {
	case "table", "csv", "json":
	default:
		return cfg, fmt.Errorf("unknown format %q", cfg.format)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if cfg.showVer {
		fmt.Println(version.String("ls-hjd"))
		return
	}

	logger := logging.New(logging.ParseLevel(cfg.logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	epoch, err := coords.ParseEpoch(cfg.epoch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Interactive: explicit, or nothing to read from a terminal.
	interactive := cfg.tui || (cfg.jd == "" && cfg.in == "-" && term.IsTerminal(int(os.Stdin.Fd())))
	if interactive {
		p := tea.NewProgram(ui.New(epoch, cfg.jd, cfg.ra, cfg.dec), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, cfg, epoch, logger, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run performs a headless conversion.
func run(ctx context.Context, cfg config, epoch coords.Epoch, logger *logging.Logger, stdin io.Reader, stdout io.Writer) error {
	conv, err := hjd.ForEpoch(epoch)
	if err != nil {
		return err
	}
	if cfg.ra == "" || cfg.dec == "" {
		return errors.New("-ra and -dec are required")
	}
	ra, err := coords.ParseRA(epoch, cfg.ra)
	if err != nil {
		return err
	}
	dec, err := coords.ParseDec(epoch, cfg.dec)
	if err != nil {
		return err
	}
	logger.Debug("target %s %s (%s)", ra, dec, epoch)

	if cfg.jd != "" {
		return convertOne(stdout, conv, ra, dec, cfg.jd)
	}

	in := stdin
	if cfg.in != "-" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return fmt.Errorf("open observations: %w", err)
		}
		defer f.Close()
		in = f
	}

	flavour, err := obs.ParseFlavour(cfg.flavour)
	if err != nil {
		return err
	}
	series, err := obs.Read(in, obs.ReadOptions{Flavour: flavour})
	if err != nil {
		return err
	}
	logger.Info("read %d observations", series.Len())

	convCfg := obs.DefaultConvertConfig()
	convCfg.Workers = cfg.workers
	convCfg.Logger = logger
	n, err := obs.ConvertToHJD(ctx, series, conv, ra, dec, convCfg)
	switch {
	case errors.Is(err, obs.ErrNothingToConvert):
		logger.Warn("%v", err)
	case err != nil:
		return err
	default:
		logger.Info("converted %d observations to HJD", n)
	}

	if cfg.out == "-" {
		return writeSeries(stdout, cfg, epoch, series)
	}
	f, err := os.Create(cfg.out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := writeSeries(f, cfg, epoch, series); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

func writeSeries(w io.Writer, cfg config, epoch coords.Epoch, series *obs.Series) error {
	switch cfg.format {
	case "csv":
		if err := obs.WriteCSV(w, series); err != nil {
			return fmt.Errorf("write CSV: %w", err)
		}
	case "json":
		if err := obs.Export(series, cfg.target, epoch.String()).WriteJSON(w); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	default:
		title := strings.TrimSpace(cfg.target + " " + cfg.ra + " " + cfg.dec + " (" + epoch.String() + ")")
		obs.WriteTable(w, series, title)
	}
	return nil
}

func convertOne(w io.Writer, conv hjd.Converter, ra coords.RAInfo, dec coords.DecInfo, jdText string) error {
	jd, err := calendar.ParseJD(jdText)
	if err != nil {
		return fmt.Errorf("bad JD: %w", err)
	}
	c := conv.Correction(jd, ra, dec)
	fmt.Fprintf(w, "JD         %.8f (%s UTC)\n", jd, calendar.TimeFromJD(jd).Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "HJD        %.8f\n", jd+c)
	fmt.Fprintf(w, "Correction %+.8f d (%s)\n", c, astro.FormatLightTime(c*86400))
	if sun, ok := hjd.SunAt(conv, jd); ok {
		elong := astro.Elongation(unit.Angle(sun.RA), sun.Dec, ra.Angle(), dec.Angle())
		fmt.Fprintf(w, "Sun        %.2s %.1s  R = %.6f AU (light time %s)\n",
			sexa.FmtRA(sun.RA), sexa.FmtAngle(sun.Dec), sun.Radius,
			astro.FormatLightTime(astro.LightTimeSeconds(sun.Radius)))
		fmt.Fprintf(w, "Elongation %.2f°\n", elong.Deg())
	}
	return nil
}
