package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/lithammer/dedent"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

var k = koanf.New(".")

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Stderr.Write([]byte(dedent.Dedent(`

		combigen enumerates the Cartesian product of the dimensions described
		in a YAML file, one combination per output line.
		With --dsn, combigen inserts combinations in a Postgres table instead.
		Postgres runs are dry by default; add --real to execute the inserts.
		`)))
	}
}

// setupConfig layers defaults, COMBIGEN_* environment and flags.
func setupConfig() error {
	_ = k.Load(confmap.Provider(map[string]interface{}{
		"color":  defaultColor(),
		"output": "csv",
		"table":  "combinations",
	}, "."), nil)

	_ = k.Load(env.Provider("COMBIGEN_", ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, "COMBIGEN_"))
	}), nil)

	pflag.Bool("color", k.Bool("color"), "Force color output.")
	pflag.StringP("config", "c", "", "Path to YAML dimensions file. Use - for stdin.")
	pflag.Bool("count", false, "Print the estimated cardinality and exit.")
	pflag.String("dsn", k.String("dsn"), "Postgres DSN. Insert combinations instead of printing.")
	pflag.IntP("limit", "l", k.Int("limit"), "Stop after this many combinations. 0 means all.")
	pflag.StringP("output", "o", k.String("output"), "Output format: csv, json or values.")
	pflag.BoolP("real", "R", false, "Real mode. Execute inserts in Postgres.")
	pflag.String("table", k.String("table"), "Target Postgres table.")
	pflag.BoolP("help", "?", false, "Show this help message and exit.")
	pflag.BoolP("version", "V", false, "Show version and exit.")
	pflag.CountP("quiet", "q", "Decrease log verbosity.")
	pflag.CountP("verbose", "v", "Increase log verbosity.")
	pflag.Parse()

	return k.Load(posflag.Provider(pflag.CommandLine, ".", k), nil)
}

func defaultColor() bool {
	plain := os.Getenv("NO_COLOR")
	if plain != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// Controller holds flags/env values controlling the execution of combigen.
type Controller struct {
	Color     bool
	Config    string
	Count     bool
	Dsn       string
	Limit     int
	Output    string
	Real      bool
	Table     string
	Quiet     int
	Verbose   int
	Verbosity string
	LogLevel  slog.Level `koanf:"-"`
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

func unmarshalController() (controller Controller, err error) {
	err = k.Unmarshal("", &controller)
	verbosity := k.String("verbosity")
	var level slog.LevelVar
	switch verbosity {
	case "":
		// Default log level is INFO, which index is 1.
		levelIndex := 1 - k.Int("verbose") + k.Int("quiet")
		levelIndex = int(math.Max(0, float64(levelIndex)))
		levelIndex = int(math.Min(float64(levelIndex), float64(len(levels)-1)))
		controller.LogLevel = levels[levelIndex]
	default:
		uerr := level.UnmarshalText([]byte(verbosity))
		if uerr == nil {
			controller.LogLevel = level.Level()
		} else {
			slog.Warn("Bad verbosity.", "source", "env", "value", verbosity)
			controller.LogLevel = slog.LevelInfo
		}
	}
	return controller, err
}
