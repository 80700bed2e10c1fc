package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/germanamz/humanize/pkg/humanizer"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type batchItem struct {
	File   string           `json:"file"`
	Result humanizer.Result `json:"result"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		f           runFlags
		concurrency int
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Humanize several files concurrently",
		Long: `Humanize each file as an independent run, at most --concurrency at a time.

Results are printed in argument order, or written to --out-dir under the
input file's base name. The first failing run cancels the rest.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			if concurrency < 1 {
				return fmt.Errorf("batch: concurrency must be at least 1, got %d", concurrency)
			}

			runner := a.pipeline("batch", f.middleware()...)
			base := a.cfg.Request()
			items := make([]batchItem, len(files))

			g, gctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(concurrency)

			for i, file := range files {
				g.Go(func() error {
					data, err := os.ReadFile(file) //nolint:gosec // path is a CLI argument
					if err != nil {
						return fmt.Errorf("batch: %w", err)
					}

					req, err := f.request(base, string(data))
					if err != nil {
						return err
					}

					res, err := runner.Run(gctx, req)
					if err != nil {
						return fmt.Errorf("batch: %s: %w", file, err)
					}

					items[i] = batchItem{File: file, Result: res}
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			return writeBatch(cmd, f, outDir, items)
		},
	}

	addRunFlags(cmd, &f)
	_ = cmd.Flags().MarkHidden("file")
	_ = cmd.Flags().MarkHidden("diff")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "maximum number of concurrent runs")
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "write each output to this directory instead of stdout")

	return cmd
}

func writeBatch(cmd *cobra.Command, f runFlags, outDir string, items []batchItem) error {
	w := cmd.OutOrStdout()

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o750); err != nil {
			return fmt.Errorf("batch: %w", err)
		}
		for _, it := range items {
			path := filepath.Join(outDir, filepath.Base(it.File))
			if err := os.WriteFile(path, []byte(it.Result.OutputText+"\n"), 0o600); err != nil {
				return fmt.Errorf("batch: %w", err)
			}
			fmt.Fprintf(w, "%s -> %s (confidence %d)\n", it.File, path, it.Result.ConfidenceScore)
		}
		return nil
	}

	if f.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for i, it := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "==> %s <==\n%s\n", it.File, it.Result.OutputText)
	}
	return nil
}
