package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// The on-disk document layout is a compatibility contract: PascalCase field
// names, zone-less timestamps, bare-number amounts. The golden file pins it.
func TestPersist_DocumentLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s, err := Open(path, nil)
	require.NoError(t, err)
	seed(t, s)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "document", data)
}
