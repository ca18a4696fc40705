package dictionary

import (
	"embed"
	"io/fs"
)

//go:embed data/*.dic
var bundled embed.FS

// Bundled returns the base word lists shipped with the package.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
