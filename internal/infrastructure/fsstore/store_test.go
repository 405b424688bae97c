package fsstore

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfp3/internal/domain/entity"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(&Config{Dir: t.TempDir()})
	require.NoError(t, err)

	return store
}

func testImage(content []byte) entity.ValidatedImage {
	return entity.ValidatedImage{
		Content:   content,
		MediaType: "image/png",
		Extension: ".png",
	}
}

func TestSaveAndOpen(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	content := bytes.Repeat([]byte{0xCD}, 10*1024)

	ref, err := store.Save(context.Background(), "u1", testImage(content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref.FileName, "u1_"))
	assert.True(t, strings.HasSuffix(ref.FileName, ".png"))
	assert.Equal(t, int64(len(content)), ref.Size)

	body, size, err := store.Open(context.Background(), ref.FileName)
	require.NoError(t, err)
	defer body.Close()

	assert.Equal(t, int64(len(content)), size)

	got, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := New(&Config{Dir: dir})
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "u1", testImage([]byte("content")))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, strings.HasPrefix(entries[0].Name(), ".upload-"),
		"temp file must be renamed into place")
}

func TestSaveDoesNotReuseNames(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	first, err := store.Save(context.Background(), "u1", testImage([]byte("one")))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "u1", testImage([]byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first.FileName, second.FileName)
}

func TestOpenMissingBlob(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, _, err := store.Open(context.Background(), "u1_deadbeef.png")
	require.ErrorIs(t, err, entity.ErrBlobMissing)
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	ref, err := store.Save(context.Background(), "u1", testImage([]byte("content")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(context.Background(), ref.FileName))
	require.NoError(t, store.Remove(context.Background(), ref.FileName),
		"removing an already-deleted blob is not an error")

	_, _, err = store.Open(context.Background(), ref.FileName)
	require.ErrorIs(t, err, entity.ErrBlobMissing)
}

func TestOpenRejectsPathTraversal(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	for _, name := range []string{"", "../secret", "a/b.png", ".hidden"} {
		_, _, err := store.Open(context.Background(), name)
		assert.ErrorIs(t, err, entity.ErrBlobMissing, name)
	}
}
