package lists

import (
	"embed"
	"io/fs"
)

//go:embed data/*.txt
var bundled embed.FS

// Bundle holds one <category>.txt list of source URLs per category.
var Bundle fs.FS = mustSub(bundled, "data")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
