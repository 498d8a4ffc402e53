package types

import (
	"path/filepath"
	"strings"
)

// Target is a file a build is asked to produce, split into the parts the
// dofile naming rules and the recipe argument contract need.
type Target struct {
	// Path is the target exactly as given on the command line
	Path string

	// Dir is the directory holding the target, "." for bare names
	Dir string

	// Base is the last path component, extension included
	Base string

	// Ext is the extension of Base including its leading '.', or "" when
	// Base has no '.'
	Ext string
}

// NewTarget splits path into its directory, base name and extension.
// The extension runs from the last '.' of the base name to its end.
func NewTarget(path string) Target {
	base := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		base = path[i+1:]
	}

	ext := ""
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		ext = base[i:]
	}

	return Target{
		Path: path,
		Dir:  filepath.Dir(path),
		Base: base,
		Ext:  ext,
	}
}

// Stem returns the base name with its extension removed. It is passed to
// recipes as their second argument.
func (t Target) Stem() string {
	return strings.TrimSuffix(t.Base, t.Ext)
}

// String implements fmt.Stringer
func (t Target) String() string {
	return t.Path
}
