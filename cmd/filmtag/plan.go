package main

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"filmtag/pkg/config"
	"filmtag/pkg/exif"
	"filmtag/pkg/roll"
)

func newPlanCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "plan <folder>",
		Short: "Show how exposures would be paired with images, without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			f, err := roll.Scan(args[0])
			if err != nil {
				return err
			}

			sc, err := roll.LoadSidecar(f.SidecarPath)
			if err != nil {
				return err
			}

			pairs, err := roll.Align(f.Images, sc.Exposures, strict)
			if err != nil {
				return err
			}

			fmt.Println(renderPlan(pairs, sc.FilmRoll, cfg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "error out on an image/exposure count mismatch")

	return cmd
}

// renderPlan renders the pairing plan as a table, one row per frame.
func renderPlan(pairs []roll.Pair, fr roll.FilmRoll, cfg *config.Config) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Image", "FNumber", "Shutter", "ISO", "Taken", "GPS"})

	for _, p := range pairs {
		m := map[string]string{}
		for _, a := range exif.Fields(p.Exposure, fr, cfg) {
			m[a.Field] = a.Value
		}

		gps := ""
		if m["GPSLatitude"] != "" {
			gps = fmt.Sprintf("%sN %sE", m["GPSLatitude"], m["GPSLongitude"])
		}

		tw.AppendRow(table.Row{
			p.Exposure.Number,
			filepath.Base(p.Image),
			m["FNumber"],
			m["ExposureTime"],
			m["ISO"],
			m["DateTimeOriginal"],
			gps,
		})
	}

	return tw.Render()
}
