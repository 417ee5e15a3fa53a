package main

import (
	"fmt"
	"path/filepath"

	"github.com/otiai10/copy"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"filmtag/pkg/config"
	"filmtag/pkg/exif"
	"filmtag/pkg/roll"
)

type applyOptions struct {
	dryRun    bool
	strict    bool
	backupDir string
	recursive bool
	watch     bool
}

func newApplyCommand() *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply <folder>",
		Short: "Match exposures to images and write their metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the pairing plan without invoking exiftool")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "error out on an image/exposure count mismatch instead of dropping leading images")
	cmd.Flags().StringVar(&opts.backupDir, "backup", "", "copy each image into this directory before writing to it")
	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "process every folder under <folder> that contains a sidecar")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "keep running and re-apply when the sidecar changes")

	return cmd
}

func runApply(folder string, opts *applyOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if opts.recursive {
		dirs, err := roll.Discover(folder)
		if err != nil {
			return err
		}
		if len(dirs) == 0 {
			return fmt.Errorf("no sidecar files found under %s", folder)
		}

		// A bad folder doesn't stop the walk.
		for _, d := range dirs {
			if err := applyFolder(d, cfg, opts); err != nil {
				klog.Errorf("%s: %v", d, err)
			}
		}
	} else if err := applyFolder(folder, cfg, opts); err != nil {
		return err
	}

	if opts.watch {
		return watchFolder(folder, cfg, opts)
	}

	return nil
}

// applyFolder processes one roll folder end to end: scan, parse, align, write.
func applyFolder(dir string, cfg *config.Config, opts *applyOptions) error {
	f, err := roll.Scan(dir)
	if err != nil {
		return err
	}

	klog.Infof("using sidecar: %s", f.SidecarPath)
	klog.Infof("found %d image files", len(f.Images))

	sc, err := roll.LoadSidecar(f.SidecarPath)
	if err != nil {
		return err
	}
	klog.Infof("found %d exposures in sidecar", len(sc.Exposures))

	pairs, err := roll.Align(f.Images, sc.Exposures, opts.strict)
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Println(renderPlan(pairs, sc.FilmRoll, cfg))
		return nil
	}

	w := exif.NewWriter(cfg.Exiftool.Binary)
	for _, p := range pairs {
		klog.Infof("updating %s for exposure #%d", filepath.Base(p.Image), p.Exposure.Number)

		if opts.backupDir != "" {
			dst := filepath.Join(opts.backupDir, filepath.Base(p.Image))
			if err := copy.Copy(p.Image, dst); err != nil {
				return fmt.Errorf("backup: %w", err)
			}
		}

		if err := w.Apply(exif.Fields(p.Exposure, sc.FilmRoll, cfg), p.Image); err != nil {
			klog.Warningf("write failed for %s: %v", p.Image, err)
		}
	}

	klog.Infof("all metadata applied for %s", dir)
	return nil
}
