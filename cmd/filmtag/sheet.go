package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"filmtag/pkg/roll"
	"filmtag/pkg/sheet"
)

func newSheetCommand() *cobra.Command {
	var out string
	opts := sheet.Opts{}

	cmd := &cobra.Command{
		Use:   "sheet <folder>",
		Short: "Render a JPEG contact sheet of the roll's scanned frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			images, err := roll.Images(args[0])
			if err != nil {
				return err
			}
			if len(images) == 0 {
				return fmt.Errorf("no image files found in %s", args[0])
			}

			if out == "" {
				out = filepath.Join(args[0], "contact_sheet.jpg")
			}

			if err := sheet.Render(images, out, opts); err != nil {
				return err
			}

			klog.Infof("wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default <folder>/contact_sheet.jpg)")
	cmd.Flags().IntVar(&opts.Columns, "columns", 0, "frames per row")
	cmd.Flags().IntVar(&opts.CellWidth, "width", 0, "thumbnail width in pixels")

	return cmd
}
