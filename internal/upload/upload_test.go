package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saad710/shop-api/internal/upload"

	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, filename, contentType, body string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestSave_Image(t *testing.T) {
	dir := t.TempDir()
	s := upload.NewSaver(dir)

	fh := multipartFile(t, "profilePicture", "avatar.png", "image/png", "png-bytes")

	path, err := s.Save(fh)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "-avatar.png"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))
}

func TestSave_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	s := upload.NewSaver(dir)

	fh := multipartFile(t, "profilePicture", "payload.sh", "application/octet-stream", "#!/bin/sh")

	_, err := s.Save(fh)
	require.ErrorIs(t, err, upload.ErrNotImage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSave_DistinctNamesForSameFilename(t *testing.T) {
	dir := t.TempDir()
	s := upload.NewSaver(dir)

	first, err := s.Save(multipartFile(t, "images", "shoe.jpg", "image/jpeg", "a"))
	require.NoError(t, err)
	second, err := s.Save(multipartFile(t, "images", "shoe.jpg", "image/jpeg", "b"))
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.Equal(t, dir, filepath.Dir(first))
}

func TestSaveAll_StopsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	s := upload.NewSaver(dir)

	files := []*multipart.FileHeader{
		multipartFile(t, "images", "ok.jpg", "image/jpeg", "a"),
		multipartFile(t, "images", "bad.txt", "text/plain", "b"),
	}

	_, err := s.SaveAll(files)
	require.ErrorIs(t, err, upload.ErrNotImage)
}
