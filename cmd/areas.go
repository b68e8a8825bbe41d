package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sodam-labs/sodam/internal/fetcher"
	"github.com/sodam-labs/sodam/internal/model"
	"github.com/sodam-labs/sodam/internal/store"
)

var (
	areasInput   string
	areasLimit   int
	areasOffset  int
	areaPutID    string
	areaPutName  string
	areaPutLat   float64
	areaPutLon   float64
	areaPutFeats string
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "Manage stored sample areas",
	Long:  "Commands for importing and listing the sample areas served by the sample endpoint.",
}

var areasImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import areas from a JSON, CSV or XLSX file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		n, err := importAreas(ctx, st, areasInput)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d areas\n", n)
		return nil
	},
}

var areasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored areas",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		areas, err := st.ListAreas(ctx, store.AreaFilter{Limit: areasLimit, Offset: areasOffset})
		if err != nil {
			return eris.Wrap(err, "areas: list")
		}
		printAreas(cmd.OutOrStdout(), areas)
		return nil
	},
}

var areasGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one stored area as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		return showArea(ctx, cmd.OutOrStdout(), st, args[0])
	},
}

var areasPutCmd = &cobra.Command{
	Use:   "put",
	Short: "Create or replace one area",
	Long:  "Creates or replaces a single area. Without --id a new id is generated.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		var lat, lon *float64
		if cmd.Flags().Changed("lat") {
			lat = &areaPutLat
		}
		if cmd.Flags().Changed("lon") {
			lon = &areaPutLon
		}
		area, err := buildArea(areaPutID, areaPutName, areaPutFeats, lat, lon)
		if err != nil {
			return err
		}
		saved, err := st.UpsertArea(ctx, area)
		if err != nil {
			return eris.Wrap(err, "areas: put")
		}
		return writeAreaJSON(cmd.OutOrStdout(), saved)
	},
}

// showArea prints the stored area with the given id.
func showArea(ctx context.Context, out io.Writer, st store.Store, id string) error {
	a, err := st.GetArea(ctx, id)
	if err != nil {
		return eris.Wrapf(err, "areas: get %s", id)
	}
	return writeAreaJSON(out, a)
}

// buildArea assembles an area from command-line values. Coordinates must be
// given together or not at all.
func buildArea(id, name, features string, lat, lon *float64) (model.Area, error) {
	if (lat == nil) != (lon == nil) {
		return model.Area{}, eris.New("areas: --lat and --lon must be given together")
	}
	fs, err := readFeatures(features, "")
	if err != nil {
		return model.Area{}, err
	}
	return model.Area{ID: id, Name: name, Lat: lat, Lon: lon, Features: fs}, nil
}

func writeAreaJSON(out io.Writer, a *model.Area) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

// importAreas loads items from path and stores each as an area.
func importAreas(ctx context.Context, st store.Store, path string) (int, error) {
	items, err := fetcher.LoadItems(ctx, path)
	if err != nil {
		return 0, eris.Wrap(err, "areas: load items")
	}

	areas := make([]model.Area, 0, len(items))
	for _, it := range items {
		areas = append(areas, model.AreaFromItem(it))
	}

	n, err := st.ImportAreas(ctx, areas)
	if err != nil {
		return 0, eris.Wrap(err, "areas: import")
	}
	zap.L().Info("imported areas", zap.String("input", path), zap.Int("count", n))
	return n, nil
}

func printAreas(out io.Writer, areas []model.Area) {
	if len(areas) == 0 {
		_, _ = fmt.Fprintln(out, "No areas found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tLAT\tLON\tFEATURES")
	_, _ = fmt.Fprintln(w, "--\t----\t---\t---\t--------")
	for _, a := range areas {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", a.ID, a.Name, coord(a.Lat), coord(a.Lon), len(a.Features))
	}
	_ = w.Flush()
}

func coord(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *v)
}

func init() {
	areasImportCmd.Flags().StringVar(&areasInput, "input", "", "areas file (.json, .csv or .xlsx)")
	_ = areasImportCmd.MarkFlagRequired("input")
	areasListCmd.Flags().IntVar(&areasLimit, "limit", 100, "maximum number of areas to list")
	areasListCmd.Flags().IntVar(&areasOffset, "offset", 0, "number of areas to skip")

	areasPutCmd.Flags().StringVar(&areaPutID, "id", "", "area id (generated when empty)")
	areasPutCmd.Flags().StringVar(&areaPutName, "name", "", "display name")
	areasPutCmd.Flags().Float64Var(&areaPutLat, "lat", 0, "latitude")
	areasPutCmd.Flags().Float64Var(&areaPutLon, "lon", 0, "longitude")
	areasPutCmd.Flags().StringVar(&areaPutFeats, "features", "{}", "feature set as a JSON object")

	areasCmd.AddCommand(areasImportCmd)
	areasCmd.AddCommand(areasListCmd)
	areasCmd.AddCommand(areasGetCmd)
	areasCmd.AddCommand(areasPutCmd)
	rootCmd.AddCommand(areasCmd)
}
