package utils

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

// uploadedFile builds a *multipart.FileHeader the way fiber's FormFile would,
// by writing and re-parsing a multipart body.
func uploadedFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestValidateImageCategory(t *testing.T) {
	for category := range ImageCategories {
		assert.NoError(t, ValidateImageCategory(category))
	}

	assert.Error(t, ValidateImageCategory("events"))
	assert.Error(t, ValidateImageCategory("../etc"))
	assert.Error(t, ValidateImageCategory(""))
}

func TestValidateImageFile(t *testing.T) {
	t.Run("accepts a real png", func(t *testing.T) {
		ext, err := ValidateImageFile(uploadedFile(t, "logo.png", "image/png", pngBytes))
		require.NoError(t, err)
		assert.Equal(t, "png", ext)
	})

	t.Run("renamed executable is rejected by the content sniff", func(t *testing.T) {
		// Declared header and extension both say image; only the content
		// check can catch this.
		exe := append([]byte("MZ\x90\x00\x03"), make([]byte, 64)...)
		_, err := ValidateImageFile(uploadedFile(t, "logo.png", "image/png", exe))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not an image")
	})

	t.Run("non-image declared content type", func(t *testing.T) {
		_, err := ValidateImageFile(uploadedFile(t, "logo.png", "application/octet-stream", pngBytes))
		assert.Error(t, err)
	})

	t.Run("disallowed extension", func(t *testing.T) {
		_, err := ValidateImageFile(uploadedFile(t, "notes.svg", "image/svg+xml", pngBytes))
		assert.Error(t, err)
	})

	t.Run("missing extension defaults to jpg", func(t *testing.T) {
		ext, err := ValidateImageFile(uploadedFile(t, "logo", "image/png", pngBytes))
		require.NoError(t, err)
		assert.Equal(t, "jpg", ext)
	})
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	file := uploadedFile(t, "avatar.png", "image/png", pngBytes)

	publicPath, err := SaveImage(file, dir, "profiles", "avatar.png")
	require.NoError(t, err)
	assert.Equal(t, PublicImagePrefix+"profiles/avatar.png", publicPath)

	stored, err := os.ReadFile(filepath.Join(dir, "profiles", "avatar.png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)
}

func TestGenerateImageFilename(t *testing.T) {
	named := GenerateImageFilename("splash", "png")
	assert.True(t, strings.HasPrefix(named, "splash-"))
	assert.True(t, strings.HasSuffix(named, ".png"))

	anonymous := GenerateImageFilename("", "jpg")
	assert.True(t, strings.HasSuffix(anonymous, ".jpg"))
	assert.NotEqual(t, anonymous, GenerateImageFilename("", "jpg"))

	t.Run("path segments in the base cannot escape the category", func(t *testing.T) {
		escaped := GenerateImageFilename("../../etc/passwd", "png")
		assert.True(t, strings.HasPrefix(escaped, "passwd-"))
		assert.NotContains(t, escaped, "/")
		assert.NotContains(t, escaped, "..")

		backslashed := GenerateImageFilename(`..\..\boot`, "png")
		assert.True(t, strings.HasPrefix(backslashed, "boot-"))

		// A base that reduces to nothing falls back to the random form.
		dots := GenerateImageFilename("..", "png")
		assert.NotContains(t, dots, "..png")
		assert.True(t, strings.HasSuffix(dots, ".png"))
	})
}

func TestDeleteImage(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is success", func(t *testing.T) {
		assert.NoError(t, DeleteImage(dir, PublicImagePrefix+"profiles/missing.jpg"))
	})

	t.Run("external urls are skipped", func(t *testing.T) {
		assert.NoError(t, DeleteImage(dir, "https://cdn.example.com/x.jpg"))
	})

	t.Run("existing file is removed", func(t *testing.T) {
		sub := filepath.Join(dir, "profiles")
		require.NoError(t, os.MkdirAll(sub, 0755))
		path := filepath.Join(sub, "avatar.jpg")
		require.NoError(t, os.WriteFile(path, []byte("fake"), 0644))

		require.NoError(t, DeleteImage(dir, PublicImagePrefix+"profiles/avatar.jpg"))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}
