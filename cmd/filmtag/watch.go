package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"

	"filmtag/pkg/config"
	"filmtag/pkg/roll"
)

// watchFolder re-applies a folder whenever its sidecar changes. Only sidecar
// events retrigger: exiftool's own writes to the images must not cause a loop.
func watchFolder(folder string, cfg *config.Config, opts *applyOptions) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	dirs := []string{folder}
	if opts.recursive {
		found, err := roll.Discover(folder)
		if err != nil {
			return err
		}
		dirs = append(dirs, found...)
		slices.Sort(dirs)
		dirs = slices.Compact(dirs)
	}

	klog.Infof("watching %d dirs ...", len(dirs))
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				klog.Infof("sidecar event: %s", event)
				if err := applyFolder(filepath.Dir(event.Name), cfg, opts); err != nil {
					klog.Errorf("re-apply failed: %v", err)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch error: %v", err)
		}
	}
}
