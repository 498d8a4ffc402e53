package filesystem

import (
	"github.com/arthur-debert/redo/pkg/types"
	"github.com/spf13/afero"
)

// NewOS creates a new OS filesystem implementation. Files it opens are
// *os.File values, which the lock package relies on.
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}
