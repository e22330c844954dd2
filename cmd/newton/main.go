// Command newton renders Newton fractals to image files.
//
// Usage:
//
//	newton render --roots 5 --out newton.png
//	newton render --scene scene.yaml --frames 60 --spin 0.05 --out frames/f%03d.png
//	newton poly --scene scene.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gogpu/newton"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "newton",
		Short:        "Render Newton fractals",
		Version:      newton.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				newton.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log render stages to stderr")

	root.AddCommand(newRenderCmd(), newPolyCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one image or a rotating frame sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := f.job(cmd.Flags())
			if err != nil {
				return err
			}
			return job.Run(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newPolyCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "poly",
		Short: "Print the polynomial built from the configured roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := f.job(cmd.Flags())
			if err != nil {
				return err
			}
			r, err := newton.NewRenderer(job.Config)
			if err != nil {
				return err
			}
			defer r.Close()

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "f(z) = %v\n", r.Polynomial())
			return err
		},
	}
	f.register(cmd.Flags())
	return cmd
}
