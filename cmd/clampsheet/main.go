package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"clampvar/internal/config"
	"clampvar/internal/effect"
	"clampvar/internal/logstream"
	"clampvar/internal/store"
	"clampvar/internal/tui"

	"github.com/alecthomas/kong"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

type CLI struct {
	Config  string     `help:"Path to sheet file" default:"./sheet.yaml" type:"path"`
	Run     RunCmd     `cmd:"" default:"withargs" help:"Apply effects to the sheet (default)"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type RunCmd struct {
	DryRun   bool   `help:"List effects without applying them"`
	Trace    bool   `help:"Print each effect as it is applied"`
	Snapshot string `help:"Start from values stored in this snapshot file" type:"path"`
	Save     string `help:"Write final values to this snapshot file" type:"path"`

	out io.Writer `kong:"-"`
}

func (c *RunCmd) writer() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

func (c *RunCmd) Run(cli *CLI) error {
	out := c.writer()

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sheet := cfg.Sheet
	if c.Snapshot != "" {
		values, err := store.NewFileStore(c.Snapshot).Load()
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if err := sheet.Restore(values); err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
	}

	effects, err := effect.Build(cfg.Effects)
	if err != nil {
		return fmt.Errorf("build effects: %w", err)
	}

	if len(effects) == 0 {
		fmt.Fprintln(out, "No effects to apply")
		fmt.Fprintln(out, tui.RenderSheet("Sheet", sheet.Snapshot()))
		return nil
	}

	if c.DryRun {
		fmt.Fprintf(out, "Would apply %d effect(s):\n\n", len(effects))
		for i, e := range effects {
			fmt.Fprintf(out, "  %d. %s\n", i+1, e.Name())
		}
		return nil
	}

	ctx := context.Background()
	if c.Trace {
		ctx = logstream.WithWriter(ctx, out)
	}

	fmt.Fprintln(out, tui.RenderSheet("Initial", sheet.Snapshot()))
	fmt.Fprintln(out)

	exec := effect.NewExecutor(&sheet, effects)
	runErr := exec.RunAll(ctx)

	if c.Trace {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, tui.RenderSteps(exec.Effects(), exec.Results()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderSheet("Final", sheet.Snapshot()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderSummary(exec.Summary()))

	if runErr != nil {
		return fmt.Errorf("apply effects: %w", runErr)
	}

	if c.Save != "" {
		if err := store.NewFileStore(c.Save).Save(sheet.Snapshot()); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}

	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(cli *CLI) error {
	fmt.Printf("clampsheet %s (commit: %s, built: %s)\n", Version, Commit, Date)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("clampsheet"),
		kong.Description("Apply effects to a sheet of range-limited attributes"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
