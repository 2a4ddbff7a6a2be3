package filestorage_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/filestorage"
)

// uploadHeader builds a real multipart.FileHeader the way gin would
// receive it.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("projectFile", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["projectFile"][0]
}

func TestSaveFile_RoundTrip(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	content := []byte("zip archive bytes")
	stored, err := storage.SaveFile(uploadHeader(t, "project.zip", content))
	require.NoError(t, err)
	assert.Equal(t, ".zip", filepath.Ext(stored))
	assert.NotEqual(t, "project.zip", stored)

	read, err := os.ReadFile(storage.FullPath(stored))
	require.NoError(t, err)
	assert.Equal(t, content, read)
}

func TestSaveFile_RejectsDisallowedExtension(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveFile(uploadHeader(t, "malware.exe", []byte("nope")))
	assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed)
}

func TestSaveFile_NilHeader(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveFile(nil)
	assert.ErrorIs(t, err, apperrors.ErrProjectFileMissing)
}

func TestDeleteFile_Idempotent(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	stored, err := storage.SaveFile(uploadHeader(t, "notes.txt", []byte("hello")))
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(stored))
	// Second delete of the same path is a no-op.
	require.NoError(t, storage.DeleteFile(stored))
	require.NoError(t, storage.DeleteFile(""))
}

func TestExtensionAllowed(t *testing.T) {
	assert.True(t, filestorage.ExtensionAllowed("report.PDF"))
	assert.False(t, filestorage.ExtensionAllowed("archive.tar.gz"))
	assert.True(t, filestorage.ExtensionAllowed("photo.jpeg"))
	assert.False(t, filestorage.ExtensionAllowed("script.sh"))
	assert.False(t, filestorage.ExtensionAllowed("noextension"))
}

func TestMimeType(t *testing.T) {
	assert.Equal(t, "application/zip", filestorage.MimeType("code.zip"))
	assert.Equal(t, "application/pdf", filestorage.MimeType("paper.pdf"))
	assert.Equal(t, "image/png", filestorage.MimeType("shot.PNG"))
	assert.Equal(t, "application/octet-stream", filestorage.MimeType("unknown.xyz"))
}
