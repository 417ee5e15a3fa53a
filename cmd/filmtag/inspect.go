package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"filmtag/pkg/exif"
	"filmtag/pkg/roll"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <folder>",
		Short: "Read back the metadata currently embedded in a folder's images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			images, err := roll.Images(args[0])
			if err != nil {
				return err
			}
			if len(images) == 0 {
				return fmt.Errorf("no image files found in %s", args[0])
			}

			frames, err := exif.ReadFrames(images)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Image", "Camera", "FNumber", "Shutter", "ISO", "Taken", "GPS", "Description"})

			for _, f := range frames {
				fnum := ""
				if f.FNumber > 0 {
					fnum = strconv.FormatFloat(f.FNumber, 'f', -1, 64)
				}

				gps := ""
				if f.Latitude != "" {
					gps = fmt.Sprintf("%s %s", f.Latitude, f.Longitude)
				}

				tw.AppendRow(table.Row{
					filepath.Base(f.Path),
					f.Make + " " + f.Model,
					fnum,
					f.ExposureTime,
					f.ISO,
					f.Taken,
					gps,
					f.Description,
				})
			}

			fmt.Println(tw.Render())
			return nil
		},
	}
}
