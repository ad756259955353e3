package filestore

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := New(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	rel, err := store.Save(makeFileHeader(t, "dune.pdf", "content"))
	require.NoError(t, err)

	// 相对路径形如 uploads/<毫秒时间戳>-dune.pdf
	assert.True(t, strings.HasPrefix(rel, "uploads/"))
	assert.True(t, strings.HasSuffix(rel, "-dune.pdf"))

	onDisk := filepath.Join(store.Dir(), filepath.Base(rel))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	require.NoError(t, store.Remove(rel))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveStripsPath(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	outside := filepath.Join(filepath.Dir(store.Dir()), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	// 相对路径里的目录部分会被丢弃，删不到上传目录以外的文件
	err = store.Remove("../victim.txt")
	assert.Error(t, err)
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestSaveDistinctNames(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	a, err := store.Save(makeFileHeader(t, "same.pdf", "a"))
	require.NoError(t, err)
	b, err := store.Save(makeFileHeader(t, "same.pdf", "b"))
	require.NoError(t, err)

	// 时间戳前缀只精确到毫秒，同一毫秒内保存的同名文件会互相覆盖
	if a == b {
		data, err := os.ReadFile(filepath.Join(store.Dir(), filepath.Base(b)))
		require.NoError(t, err)
		assert.Equal(t, "b", string(data))
		return
	}
	for rel, want := range map[string]string{a: "a", b: "b"} {
		data, err := os.ReadFile(filepath.Join(store.Dir(), filepath.Base(rel)))
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}
