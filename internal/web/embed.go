package web

import (
	"embed"
	"io/fs"
)

//go:embed public
var files embed.FS

// FS is the public directory served at the site root.
var FS fs.FS

func init() {
	sub, err := fs.Sub(files, "public")
	if err != nil {
		panic(err)
	}
	FS = sub
}
