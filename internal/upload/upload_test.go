package upload

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

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestUploaderSave(t *testing.T) {
	dir := t.TempDir()
	u, err := NewUploader(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := u.Save(fileHeader(t, "site photo.jpg", []byte("jpeg-bytes")), "IMAGE")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/media/"), url)
	assert.True(t, strings.HasSuffix(url, "site-photo.jpg"), url)

	// The file landed on disk under the media folder
	entries, err := os.ReadDir(filepath.Join(dir, "media"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "media", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestUploaderFoldersByType(t *testing.T) {
	u, err := NewUploader(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	url, err := u.Save(fileHeader(t, "deed.pdf", []byte("pdf")), "DOCUMENT")
	require.NoError(t, err)
	assert.Contains(t, url, "/documents/")

	url, err = u.Save(fileHeader(t, "tour.mp4", []byte("mp4")), "VIDEO")
	require.NoError(t, err)
	assert.Contains(t, url, "/videos/")
}

func TestUploaderRejectsDisallowedExtension(t *testing.T) {
	u, err := NewUploader(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = u.Save(fileHeader(t, "payload.exe", []byte("nope")), "IMAGE")
	assert.Error(t, err)
}

func TestUploaderUniqueFilenames(t *testing.T) {
	u, err := NewUploader(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	first, err := u.Save(fileHeader(t, "plan.png", []byte("a")), "IMAGE")
	require.NoError(t, err)
	second, err := u.Save(fileHeader(t, "plan.png", []byte("b")), "IMAGE")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
