// Command godfdiag inspects the registered device runtime and exercises
// the error-translation boundary against the simulated runtime.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cwbudde/godf"
	"github.com/cwbudde/godf/cuda"
	"github.com/cwbudde/godf/mem"
)

func main() {
	app := &cli.App{
		Name:   "godfdiag",
		Usage:  "diagnostics for the godf device error boundary",
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "devices",
				Usage:  "list devices exposed by the registered runtime",
				Action: devices,
			},
			{
				Name:   "selftest",
				Usage:  "run the error-translation self test on the simulated runtime",
				Action: selftest,
			},
			{
				Name:      "status",
				Usage:     "render a numeric device status code",
				ArgsUsage: "<code>",
				Action:    status,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func setup(c *cli.Context) error {
	slog.SetDefault(slog.New(tint.NewHandler(c.App.ErrWriter, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})))

	cuda.RegisterSimRuntime()
	return nil
}

func devices(c *cli.Context) error {
	rt := cuda.Current()
	if rt == nil {
		return cuda.ErrNoRuntime
	}
	devs, err := rt.Devices()
	if err != nil {
		return errors.Wrap(err, "device query failed")
	}
	for i, d := range devs {
		fmt.Fprintf(c.App.Writer, "%d: %s (%s, driver %s, %d MB, %s)\n",
			i, d.Name, d.Vendor, d.Driver, d.MemoryMB, d.ComputeCap)
	}
	return nil
}

func status(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("usage: godfdiag status <code>")
	}
	n, err := strconv.ParseInt(c.Args().First(), 10, 32)
	if err != nil {
		return errors.Wrap(err, "bad status code")
	}
	code := cuda.Error(n)
	fmt.Fprintf(c.App.Writer, "%d %s %s\n", n, code.Name(), code.Description())
	return nil
}

// selftest drives every translation path once: a passing and a failing
// precondition, a legacy allocation failure, and an asynchronous device
// failure observed through synchronization and the last-error query.
func selftest(c *cli.Context) error {
	rt := cuda.RegisterSimRuntime()
	mgr := mem.NewManager(rt)
	defer mgr.Close()

	slog.Info("debug stream checks", "armed", godf.DebugChecksEnabled())

	s, err := rt.NewStream()
	if err != nil {
		return errors.Wrap(err, "stream creation failed")
	}
	defer s.Close()

	lhs, err := godf.NewColumn(mgr, godf.Int32, 1024)
	if err != nil {
		return errors.Wrap(err, "column allocation failed")
	}
	rhs, err := godf.NewColumn(mgr, godf.Int32, 1024)
	if err != nil {
		return errors.Wrap(err, "column allocation failed")
	}
	out, err := godf.NewColumn(mgr, godf.Int32, 1024)
	if err != nil {
		return errors.Wrap(err, "column allocation failed")
	}

	if err := godf.BinaryOp(rt, s, out, lhs, rhs); err != nil {
		return errors.Wrap(err, "binary op on valid columns failed")
	}
	slog.Info("binary op on valid columns succeeded")

	short, err := godf.NewColumn(mgr, godf.Int32, 512)
	if err != nil {
		return errors.Wrap(err, "column allocation failed")
	}
	if err := godf.BinaryOp(rt, s, out, lhs, short); err != nil {
		slog.Info("size mismatch rejected", "err", err)
	}

	// Legacy surface: exhaust the simulated device and watch the
	// sentinel come back.
	rt.SetCapacity(1)
	if _, st := godf.NewColumnLegacy(mgr, godf.Int64, 1<<20); st != godf.OK {
		slog.Info("legacy allocation failure", "status", st)
	}
	rt.SetCapacity(256 << 20)
	_ = rt.GetLastError() // clear the pending allocation failure

	// Asynchronous failure: release a column's storage while work
	// referencing it is still queued, then synchronize.
	if err := godf.BinaryOp(rt, s, out, lhs, rhs); err != nil {
		return errors.Wrap(err, "binary op enqueue failed")
	}
	if err := lhs.Close(mgr); err != nil {
		return errors.Wrap(err, "column close failed")
	}
	if err := godf.CheckCuda(rt.StreamSynchronize(s)); err != nil {
		slog.Info("asynchronous failure surfaced at sync", "err", err)
	}
	if err := godf.CheckLast(rt); err != nil {
		slog.Info("pending error still visible to peek", "err", err)
	}
	_ = rt.GetLastError()

	slog.Info("selftest complete")
	return nil
}
