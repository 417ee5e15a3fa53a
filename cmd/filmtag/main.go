// filmtag writes the shooting metadata recorded in a film roll's JSON sidecar
// into the roll's scanned frames via exiftool.
package main

import (
	"os"

	_ "golang.org/x/image/tiff"
	_ "image/jpeg"
	_ "image/png"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
