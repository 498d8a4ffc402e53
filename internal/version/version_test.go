package version_test

import (
	"testing"

	"github.com/arthur-debert/redo/internal/version"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "redo-ifchange version dev (commit unknown, built unknown)\n", version.String("redo-ifchange"))
}
