package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileChecksum(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	c := filepath.Join(dir, "c.csv")
	require.NoError(t, os.WriteFile(a, []byte("product_name\nWidget\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("product_name\nWidget\n"), 0o644))
	require.NoError(t, os.WriteFile(c, []byte("product_name\nGadget\n"), 0o644))

	sumA, err := FileChecksum(a)
	require.NoError(t, err)
	sumB, err := FileChecksum(b)
	require.NoError(t, err)
	sumC, err := FileChecksum(c)
	require.NoError(t, err)

	assert.Len(t, sumA, 16)
	assert.Equal(t, sumA, sumB)
	assert.NotEqual(t, sumA, sumC)

	_, err = FileChecksum(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
