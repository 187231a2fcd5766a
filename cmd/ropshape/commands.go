package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/ropshape/pkg/rop"
	"github.com/ib-77/ropshape/pkg/rop/lite"
	"github.com/ib-77/ropshape/pkg/rop/mass"
	"github.com/ib-77/ropshape/pkg/rop/message"
)

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Print the shape and payload of every value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readItems()
			if err != nil {
				return err
			}

			out := make([]any, 0, len(items))
			for _, item := range items {
				v := rop.Classify(item)
				entry := map[string]any{
					"shape":   v.Shape().String(),
					"payload": v.Payload(),
				}
				if v.IsFailure() {
					entry["message"] = message.Message(v)
				}
				out = append(out, entry)
			}
			return a.write(out)
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Collect every payload, stopping at the first failure or absent value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readItems()
			if err != nil {
				return err
			}

			var res any
			if a.stream {
				ctx, cancel := context.WithCancel(cmd.Context())
				res = lite.All(ctx, a.pipeline(ctx, items))
				cancel()
			} else {
				res = mass.All(items...)
			}

			a.logger.Info("all", zap.Stringer("shape", rop.ShapeOf(res)))
			return a.write(res)
		},
	}
}

func (a *app) valuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values",
		Short: "Keep success payloads and plain values, drop failures and absent values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readItems()
			if err != nil {
				return err
			}

			var res []any
			if a.stream {
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				if res, err = lite.Values(ctx, a.pipeline(ctx, items)); err != nil {
					return err
				}
			} else {
				res = mass.Values(items...)
			}

			a.logger.Info("values", zap.Int("in", len(items)), zap.Int("out", len(res)))
			return a.write(res)
		},
	}
}

func (a *app) partitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "partition",
		Short: "Split success payloads from failure reasons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readItems()
			if err != nil {
				return err
			}

			var successes, failures []any
			if a.stream {
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				if successes, failures, err = lite.Partition(ctx, a.pipeline(ctx, items)); err != nil {
					return err
				}
			} else {
				successes, failures = mass.Partition(items...)
			}

			a.logger.Info("partition",
				zap.Int("successes", len(successes)),
				zap.Int("failures", len(failures)))
			return a.write(map[string]any{
				"successes": successes,
				"failures":  failures,
			})
		},
	}
}
