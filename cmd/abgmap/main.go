// Command abgmap classifies an arterial blood-gas reading and renders it on
// the acid-base map.
//
// Usage:
//
//	abgmap -paco2 50 -hco3 28 -o map.png
//	abgmap -paco2 40 -hco3 18 -ph 7.20 -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/abg"
	"github.com/gogpu/abg/chart"
	"github.com/gogpu/abg/internal/numfmt"
)

// consistencyTolerance is the pH difference above which a supplied pH is
// reported as disagreeing with PaCO2 and HCO3.
const consistencyTolerance = 0.01

type report struct {
	Measurement abg.Measurement `json:"measurement"`
	Result      abg.Result      `json:"result"`
	Rule        string          `json:"rule"`
	Consistent  bool            `json:"consistent"`
	Output      string          `json:"output,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("abgmap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		paco2   = fs.Float64("paco2", 40, "PaCO2 in mmHg")
		hco3    = fs.Float64("hco3", 24, "HCO3 in mEq/L")
		ph      = fs.Float64("ph", 0, "measured pH (default: derived from PaCO2 and HCO3)")
		radius  = fs.Float64("radius", 2, "uncertainty ring radius in PaCO2/HCO3 units")
		points  = fs.Int("points", 100, "uncertainty ring samples")
		output  = fs.String("o", "", "write the map to this PNG file")
		width   = fs.Int("width", 800, "image width")
		height  = fs.Int("height", 800, "image height")
		lang    = fs.String("lang", "en", "locale for numbers on the map")
		shaping = fs.Bool("shaping", false, "shape labels with the HarfBuzz shaper")
		asJSON  = fs.Bool("json", false, "print the result as JSON")
		verbose = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	phSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "ph" {
			phSet = true
		}
	})

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	abg.SetLogger(logger)
	defer abg.SetLogger(nil)

	tag, err := numfmt.Parse(*lang)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "abgmap: invalid -lang %q: %v\n", *lang, err)
		return 2
	}

	warnOutsideSliders(logger, *paco2, *hco3)

	m, err := abg.NewMeasurement(*paco2, *hco3)
	if err != nil {
		return fail(stderr, err)
	}
	if phSet {
		m.PH = *ph
		if err := m.Validate(); err != nil {
			return fail(stderr, err)
		}
	}
	consistent := m.Consistent(consistencyTolerance)
	if !consistent {
		logger.Warn("supplied pH disagrees with PaCO2 and HCO3", slog.Float64("ph", m.PH), slog.Float64("paco2", m.PaCO2), slog.Float64("hco3", m.HCO3))
	}

	match := abg.Evaluate(m.PH, m.PaCO2, m.HCO3)
	logger.Debug("classified", slog.String("rule", match.Rule), slog.String("label", match.Result.Label.String()))

	if *output != "" {
		chart.EnableTextShaping(*shaping)
		defer chart.EnableTextShaping(false)

		c := chart.New(
			chart.WithSize(*width, *height),
			chart.WithLanguage(tag),
			chart.WithRingRadius(*radius),
			chart.WithRingPoints(*points),
		)
		if err := c.SavePNG(*output, m); err != nil {
			return fail(stderr, err)
		}
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report{
			Measurement: m,
			Result:      match.Result,
			Rule:        match.Rule,
			Consistent:  consistent,
			Output:      *output,
		}); err != nil {
			return fail(stderr, err)
		}
		return 0
	}

	num := numfmt.New(tag)
	_, _ = fmt.Fprintf(stdout, "pH = %s\n", num.Fixed(m.PH, 2))
	_, _ = fmt.Fprintf(stdout, "Classification: %s\n", match.Result.Label)
	return 0
}

func warnOutsideSliders(logger *slog.Logger, paco2, hco3 float64) {
	if paco2 < abg.PaCO2Min || paco2 > abg.PaCO2Max {
		logger.Warn("PaCO2 outside slider range", slog.Float64("paco2", paco2),
			slog.Float64("min", abg.PaCO2Min), slog.Float64("max", abg.PaCO2Max))
	}
	if hco3 < abg.HCO3Min || hco3 > abg.HCO3Max {
		logger.Warn("HCO3 outside slider range", slog.Float64("hco3", hco3),
			slog.Float64("min", abg.HCO3Min), slog.Float64("max", abg.HCO3Max))
	}
}

func fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintf(stderr, "abgmap: %v\n", err)
	return 1
}
