package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "http://localhost:8080")

	url, err := store.Put(context.Background(), "slide-abc.html", []byte("<html></html>"), "text/html")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/view/slide-abc", url)

	ok, err := store.Head(context.Background(), "slide-abc.html")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := store.Get(context.Background(), "slide-abc.html")
	require.NoError(t, err)
	assert.Equal(t, []byte("<html></html>"), data)
}

func TestLocalStoreMissingKey(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "http://localhost:8080")

	ok, err := store.Head(context.Background(), "missing.html")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Get(context.Background(), "missing.html")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestLocalStoreIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "http://localhost:8080")

	_, err := store.Put(context.Background(), "../escape.html", []byte("x"), "text/html")
	require.NoError(t, err)

	// 键中的目录部分被丢弃，文件落在存储目录内
	ok, err := store.Head(context.Background(), "escape.html")
	require.NoError(t, err)
	assert.True(t, ok)
}
