package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/ropshape/pkg/rop/codec"
	"github.com/ib-77/ropshape/pkg/rop/core"
	"github.com/ib-77/ropshape/pkg/rop/lite"
	"github.com/ib-77/ropshape/pkg/rop/solo"
)

type app struct {
	in  io.Reader
	out io.Writer

	verbose   bool
	inputPath string
	stream    bool
	lines     int
	flatten   bool

	logger *zap.Logger
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out}

	root := &cobra.Command{
		Use:   "ropshape",
		Short: "Classify and aggregate success/failure/absent values",
		Long: `ropshape reads a YAML sequence of values and runs one of the list
aggregators over it. Successes and failures are written with local tags:

  - !ok 1
  - !error not found
  - null
  - plain value`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.OutputPaths = []string{"stderr"}
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.StringVarP(&a.inputPath, "input", "i", "", "input file (default stdin)")
	flags.BoolVar(&a.stream, "stream", false, "push the values through a concurrent pipeline")
	flags.IntVar(&a.lines, "lines", 1, "workers used with --stream; output order is not kept above 1")
	flags.BoolVar(&a.flatten, "flatten", false, "flatten nested successes before aggregating")

	root.AddCommand(
		a.classifyCmd(),
		a.allCmd(),
		a.valuesCmd(),
		a.partitionCmd(),
	)
	return root
}

func (a *app) readItems() ([]any, error) {
	r := a.in
	if a.inputPath != "" {
		f, err := os.Open(a.inputPath)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	items, err := codec.DecodeList(data)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("decoded input", zap.Int("items", len(items)), zap.String("path", a.inputPath))

	if a.flatten && !a.stream {
		for i, item := range items {
			items[i] = solo.Flatten(item)
		}
	}
	return items, nil
}

// pipeline returns the items as a channel, flattened by the workers when
// --flatten is set.
func (a *app) pipeline(ctx context.Context, items []any) <-chan any {
	ctx = core.WithLogger(core.WithWorkerOptions(ctx, a.lines), a.logger)
	engine := core.Engine(func(_ context.Context, input any) any { return input })
	if a.flatten {
		engine = lite.Flatten()
	}
	return lite.Run(ctx, core.ToChan(ctx, items...), engine, a.lines)
}

func (a *app) write(v any) error {
	data, err := codec.Encode(v)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}
