package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sodam-labs/sodam/internal/profile"
)

var profilesFormat string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the business category profiles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runProfiles(cmd.OutOrStdout(), profilesFormat)
	},
}

func runProfiles(out io.Writer, format string) error {
	switch format {
	case "table":
		printProfiles(out, profile.All())
		return nil
	case "yaml":
		b, err := profile.MarshalCatalogYAML()
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return eris.Wrap(err, "profiles: write yaml")
	default:
		return eris.Errorf("profiles: unsupported format %q (want table or yaml)", format)
	}
}

func printProfiles(out io.Writer, profiles []profile.Profile) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tBASE\tINCOME\tAGE\tGENDER\tINCOME_CURVE\tAGE_BINDING\tGENDER_PREF")
	_, _ = fmt.Fprintln(w, "--------\t----\t------\t---\t------\t------------\t-----------\t-----------")

	for _, p := range profiles {
		_, _ = fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t%s\n",
			p.Name,
			p.Weights.Base, p.Weights.Income, p.Weights.Age, p.Weights.Gender,
			p.Income.String(), p.AgeBinding, p.Gender,
		)
	}
	_ = w.Flush()
}

func init() {
	profilesCmd.Flags().StringVar(&profilesFormat, "format", "table", "output format: table or yaml")
	rootCmd.AddCommand(profilesCmd)
}
