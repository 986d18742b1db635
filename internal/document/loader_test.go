package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abeheron1/mock-data-holder/internal/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"holders": []}`), 0o600))

	doc, err := document.Load(path)
	require.NoError(t, err)
	assert.Equal(t, document.KindObject, doc.Kind())
	assert.True(t, doc.Has("holders"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := document.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
