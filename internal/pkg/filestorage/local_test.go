package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("avatar", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["avatar"][0]
}

func TestSaveAndDeleteFile(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "uploads")
	require.NoError(t, err)

	url, err := ls.SaveFile(uploadHeader(t, "me.PNG", []byte("png-bytes")), "avatars")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/avatars/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	onDisk := filepath.Join(dir, "avatars", filepath.Base(url))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, ls.DeleteFile(url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, ls.DeleteFile("/assets/avatars/avatar_1.png"))
}

func TestSaveFileRejectsNonImages(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = ls.SaveFile(uploadHeader(t, "script.sh", []byte("#!/bin/sh")), "avatars")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaveFileRejectsLargeFiles(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	ls.maxSize = 4

	_, err = ls.SaveFile(uploadHeader(t, "big.png", []byte("0123456789")), "avatars")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSaveFileStaysInsideBase(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	url, err := ls.SaveFile(uploadHeader(t, "a.png", []byte("x")), "../../escape")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/escape/"))
	_, err = os.Stat(filepath.Join(dir, "escape", filepath.Base(url)))
	assert.NoError(t, err)
}

func TestAbsolutePrefixKeepsPath(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "http://localhost:3000/uploads/")
	require.NoError(t, err)
	assert.Equal(t, "/uploads", ls.URLPrefix())

	url, err := ls.SaveFile(uploadHeader(t, "me.png", []byte("png-bytes")), "avatars")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/avatars/"), url)

	onDisk := filepath.Join(dir, "avatars", filepath.Base(url))
	_, err = os.Stat(onDisk)
	require.NoError(t, err)

	require.NoError(t, ls.DeleteFile("http://localhost:3000"+url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}
