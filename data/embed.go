package data

import (
	"embed"
	"io/fs"
)

//go:embed procedures/*.yaml
var procedures embed.FS

// Procedures returns the default procedure definitions
func Procedures() fs.FS {
	sub, err := fs.Sub(procedures, "procedures")
	if err != nil {
		panic(err)
	}
	return sub
}
