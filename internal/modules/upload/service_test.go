package upload

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	lastContentType string
	lastFileName    string
}

func (f *fakeStore) UploadImage(ctx context.Context, folder, fileName, contentType string, file io.Reader, size int64) (string, error) {
	f.lastContentType = contentType
	f.lastFileName = fileName
	return "https://cdn.example.com/" + folder + "/" + fileName, nil
}

func (f *fakeStore) DeleteImage(ctx context.Context, objectName string) error {
	return nil
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadAcceptsPNG(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	url, err := svc.UploadImage(context.Background(), fileHeader(t, "room.png", png), "portfolio")
	require.NoError(t, err)
	assert.Contains(t, url, "room.png")
	assert.Equal(t, "image/png", store.lastContentType)
}

func TestUploadAcceptsSVGByExtension(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	svg := []byte(`<?xml version="1.0" encoding="UTF-8"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	_, err := svc.UploadImage(context.Background(), fileHeader(t, "logo.svg", svg), "logo")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", store.lastContentType)

	// The same bytes without the .svg extension stay rejected.
	_, err = svc.UploadImage(context.Background(), fileHeader(t, "logo.xml", svg), "logo")
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestUploadRejectsNonImage(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.UploadImage(context.Background(), fileHeader(t, "notes.txt", []byte("plain text, not an image")), "portfolio")
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.UploadImage(context.Background(), fileHeader(t, "empty.png", nil), "portfolio")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestUploadWithoutStoreIsUnavailable(t *testing.T) {
	svc := NewService(nil)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	_, err := svc.UploadImage(context.Background(), fileHeader(t, "room.png", png), "portfolio")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
