package roll

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
)

var (
	sidecarExt = ".json"
	imageExt   = ".tif"
)

// Folder is one roll folder ready for processing: the sidecar that describes
// it and its scanned frames sorted case-insensitively by name.
type Folder struct {
	Dir         string
	SidecarPath string
	Images      []string
}

// Scan lists a roll folder and locates its sidecar and image files. The first
// sidecar returned by the directory listing wins. A folder without a sidecar
// or without images is an error.
func Scan(dir string) (*Folder, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	f := &Folder{Dir: dir}
	for _, e := range ents {
		if e.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(e.Name())) {
		case sidecarExt:
			if f.SidecarPath == "" {
				f.SidecarPath = filepath.Join(dir, e.Name())
			}
		case imageExt:
			f.Images = append(f.Images, filepath.Join(dir, e.Name()))
		}
	}

	if f.SidecarPath == "" {
		return nil, fmt.Errorf("no %s sidecar file found in %s", sidecarExt, dir)
	}

	if len(f.Images) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", imageExt, dir)
	}

	sortImages(f.Images)
	return f, nil
}

// Images returns the sorted image files of a folder, sidecar or not. Used by
// commands that only look at the scans.
func Images(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	is := []string{}
	for _, e := range ents {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), imageExt) {
			is = append(is, filepath.Join(dir, e.Name()))
		}
	}

	sortImages(is)
	return is, nil
}

// Discover walks a directory tree and returns every folder that contains a
// sidecar file, skipping dot directories.
func Discover(root string) ([]string, error) {
	dirs := []string{}

	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if path != root && filepath.Base(path)[0] == '.' {
					return godirwalk.SkipThis
				}
				return nil
			}

			if strings.EqualFold(filepath.Ext(path), sidecarExt) {
				dirs = append(dirs, filepath.Dir(path))
			}

			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	slices.Sort(dirs)
	return slices.Compact(dirs), nil
}

func sortImages(is []string) {
	sort.Slice(is, func(i, j int) bool {
		return strings.ToLower(filepath.Base(is[i])) < strings.ToLower(filepath.Base(is[j]))
	})
}
