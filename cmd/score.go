package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sodam-labs/sodam/internal/feature"
	"github.com/sodam-labs/sodam/internal/scorer"
)

var (
	scoreCategory string
	scoreFeatures string
	scoreFile     string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single location",
	Long:  "Scores one feature set. Without --category, or with an unknown one, the category-agnostic fallback scorer is used.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		features, err := readFeatures(scoreFeatures, scoreFile)
		if err != nil {
			return err
		}
		return runScore(cmd.Context(), cmd.OutOrStdout(), newService(), scoreCategory, features)
	},
}

// readFeatures parses features from an inline JSON object or a JSON file.
// Exactly one source must be given.
func readFeatures(inline, path string) (feature.Set, error) {
	var r io.Reader
	switch {
	case inline != "" && path != "":
		return nil, eris.New("score: use either --features or --file, not both")
	case inline != "":
		r = strings.NewReader(inline)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "score: open %s", path)
		}
		defer f.Close() //nolint:errcheck
		r = f
	default:
		return nil, eris.New("score: --features or --file is required")
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var fs feature.Set
	if err := dec.Decode(&fs); err != nil {
		return nil, eris.Wrap(err, "score: decode features")
	}
	if fs == nil {
		fs = feature.Set{}
	}
	return fs, nil
}

func runScore(ctx context.Context, out io.Writer, svc *scorer.Service, category string, features feature.Set) error {
	res := svc.Score(ctx, category, features)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func init() {
	scoreCmd.Flags().StringVar(&scoreCategory, "category", "", "business category (e.g. 카페)")
	scoreCmd.Flags().StringVar(&scoreFeatures, "features", "", "feature set as a JSON object")
	scoreCmd.Flags().StringVar(&scoreFile, "file", "", "path to a JSON file holding the feature set")
	rootCmd.AddCommand(scoreCmd)
}
