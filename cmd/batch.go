package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sodam-labs/sodam/internal/fetcher"
	"github.com/sodam-labs/sodam/internal/scorer"
)

var (
	batchCategory string
	batchInput    string
	batchFormat   string
	batchOutput   string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score many locations with batch-relative income percentiles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("batch"); err != nil {
			return err
		}
		if batchFormat != "json" && batchFormat != "csv" {
			return eris.Errorf("batch: unsupported format %q (want json or csv)", batchFormat)
		}

		out := cmd.OutOrStdout()
		if batchOutput != "" {
			f, err := os.Create(batchOutput)
			if err != nil {
				return eris.Wrap(err, "batch: create output file")
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		return runBatch(ctx, out, newService(), batchInput, batchCategory, batchFormat)
	},
}

func runBatch(ctx context.Context, out io.Writer, svc *scorer.Service, input, category, format string) error {
	items, err := fetcher.LoadItems(ctx, input)
	if err != nil {
		return eris.Wrap(err, "batch: load items")
	}

	zap.L().Info("scoring batch",
		zap.String("input", input),
		zap.String("category", category),
		zap.Int("items", len(items)),
	)

	results := svc.ScoreBatch(ctx, category, items)
	if err := ctx.Err(); err != nil {
		return eris.Wrap(err, "batch: interrupted")
	}

	if format == "csv" {
		return writeBatchCSV(out, results)
	}
	if results == nil {
		results = []scorer.ItemResult{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"items": results})
}

var subScoreColumns = []string{"base", "income", "age", "gender"}

// writeBatchCSV writes one row per item: its attributes, the scoring method,
// the final score and the profile sub-scores when a profile was used.
func writeBatchCSV(out io.Writer, results []scorer.ItemResult) error {
	attrCols := attrColumns(results)
	header := append(append([]string{}, attrCols...), "method", "score")
	header = append(header, subScoreColumns...)

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "batch: write csv header")
	}

	for _, r := range results {
		row := make([]string, 0, len(header))
		for _, c := range attrCols {
			row = append(row, csvCell(r.Attrs[c]))
		}
		row = append(row, string(r.Result.Method), formatFloat(r.Result.Score()))
		if p := r.Result.Profile; p != nil {
			b := p.Breakdown
			row = append(row, formatFloat(b.Base), formatFloat(b.Income), formatFloat(b.Age), formatFloat(b.Gender))
		} else {
			row = append(row, "", "", "", "")
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "batch: write csv row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "batch: flush csv")
}

// attrColumns returns the union of attribute keys with id and name first.
func attrColumns(results []scorer.ItemResult) []string {
	seen := map[string]bool{}
	var rest []string
	for _, r := range results {
		for k := range r.Attrs {
			if !seen[k] {
				seen[k] = true
				if k != "id" && k != "name" {
					rest = append(rest, k)
				}
			}
		}
	}
	sort.Strings(rest)

	var cols []string
	for _, k := range []string{"id", "name"} {
		if seen[k] {
			cols = append(cols, k)
		}
	}
	return append(cols, rest...)
}

func csvCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return formatFloat(t)
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return cast.ToString(t)
		}
		return string(b)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func init() {
	batchCmd.Flags().StringVar(&batchCategory, "category", "", "business category; empty uses the fallback scorer")
	batchCmd.Flags().StringVar(&batchInput, "input", "", "items file (.json, .csv or .xlsx)")
	batchCmd.Flags().StringVar(&batchFormat, "format", "json", "output format: json or csv")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "output file (default stdout)")
	_ = batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}
