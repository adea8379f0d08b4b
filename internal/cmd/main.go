// Package cmd implements the combigen command.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"slices"
	"time"

	"github.com/combigen/combigen/internal/cartesian"
	"github.com/combigen/combigen/internal/config"
	"github.com/combigen/combigen/internal/perf"
	"github.com/combigen/combigen/internal/postgres"
	"github.com/combigen/combigen/internal/render"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var outputFormats = []string{"csv", "json", "values"}

func Main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer logPanic()

	// .env first, so that bootstrap logging sees COMBIGEN_VERBOSITY.
	_ = godotenv.Load()
	err := config.SetupLogging()
	if err == nil {
		err = setupConfig()
	}
	if err == nil {
		if k.Bool("help") {
			pflag.Usage()
			return
		}
		if k.Bool("version") {
			showVersion()
			return
		}
		err = run(ctx)
	}
	if err != nil {
		slog.Error("Fatal error.", "err", err)
		if config.CurrentLevel > slog.LevelDebug {
			slog.Error("Run combigen with --verbose to get more informations.")
		}
		var code errorCode
		if errors.As(err, &code) {
			code.Exit()
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	start := time.Now()

	controller, err := unmarshalController()
	if err != nil {
		return
	}
	config.SetLoggingHandler(controller.LogLevel, controller.Color)
	slog.Info("Starting combigen",
		"version", version(),
		"runtime", runtime.Version(),
		"commit", commit,
		"pid", os.Getpid(),
	)

	if !slices.Contains(outputFormats, controller.Output) {
		return errorCode{code: 2, message: "bad --output value: " + controller.Output}
	}

	path := config.FindFile(controller.Config)
	if "" == path {
		return errors.New("no dimensions file found")
	}
	slog.Info("Using YAML dimensions file.", "path", path)
	c, err := config.Load(path)
	if err != nil {
		return
	}

	builder := c.Builder()
	estimate := builder.Size()
	if controller.Count {
		fmt.Println(estimate)
		return
	}

	product := builder.Product()
	var count uint64
	var watch perf.StopWatch
	if "" != controller.Dsn {
		count, err = insert(ctx, &controller, &watch, c, product)
	} else {
		count, err = render.Emit(os.Stdout, controller.Output, c.Names(), product, controller.Limit)
	}
	if err != nil {
		return
	}

	elapsed := time.Since(start)
	logAttrs := []interface{}{
		"combinations", count,
		"estimate", estimate,
		"elapsed", elapsed,
		"mempeak", perf.FormatBytes(perf.ReadVMPeak()),
	}
	if 0 < watch.Count {
		logAttrs = append(logAttrs, "postgres", watch.Total, "inserts", watch.Count)
	}
	slog.Info("Enumeration complete.", logAttrs...)
	return
}

func insert(ctx context.Context, controller *Controller, watch *perf.StopWatch, c config.Config, product *cartesian.Product) (count uint64, err error) {
	var conn *pgx.Conn
	if controller.Real {
		slog.Info("Real mode. Postgres instance will be modified.")
		conn, err = postgres.Connect(ctx, controller.Dsn)
		if err != nil {
			return
		}
		defer conn.Close(ctx)
	} else {
		slog.Warn("Dry run. Postgres instance will be untouched.")
	}
	sink := postgres.NewSink(conn, controller.Table, render.Columns(c.Names()), watch)
	return sink.Insert(ctx, product, controller.Limit)
}

func logPanic() {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("Panic!", "err", r)
	buf := debug.Stack()
	fmt.Fprintf(os.Stderr, "%s", buf)
	slog.Error("Aborting combigen.", "err", r)
	if config.CurrentLevel > slog.LevelDebug {
		slog.Error("Run combigen with --verbose to get more informations.")
	}
	os.Exit(1)
}
