// Package assets bundles the resources shipped with the binary: ASCII-art
// header blocks, style sheets, and the example template. Lookups are by
// file name; callers are expected to normalize names (lowercase, extension)
// before asking.
package assets

import (
	"embed"
	"io/fs"
	"sort"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
)

// DefaultStyle is the style file used when every other source falls through
const DefaultStyle = "classic.yaml"

//go:embed headers/*.txt
var headerFS embed.FS

//go:embed styles/*.yaml
var styleFS embed.FS

//go:embed docs/example.yaml
var docsFS embed.FS

// Header returns the named ASCII header block
func Header(name string) ([]byte, error) {
	data, err := headerFS.ReadFile("headers/" + name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrHeaderNotFound, "invalid resource file: headers/%s", name)
	}
	return data, nil
}

// Style returns the named style sheet source
func Style(name string) ([]byte, error) {
	data, err := styleFS.ReadFile("styles/" + name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStyleNotFound, "invalid resource file: styles/%s", name)
	}
	return data, nil
}

// ExampleTemplate returns the bundled example readme template
func ExampleTemplate() []byte {
	data, _ := docsFS.ReadFile("docs/example.yaml")
	return data
}

// Headers lists the bundled header names, sorted
func Headers() []string {
	return list(headerFS, "headers")
}

// Styles lists the bundled style names, sorted
func Styles() []string {
	return list(styleFS, "styles")
}

func list(fsys embed.FS, dir string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
