package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// PublicImagePrefix is the URL prefix uploaded images are served under.
const PublicImagePrefix = "/assets/images/"

// ImageCategories maps the category tag of an upload to its storage sub-path.
var ImageCategories = map[string]bool{
	"venues/bg":         true,
	"venues/facilities": true,
	"venues/contacts":   true,
	"venues/photos":     true,
	"events/splash":     true,
	"events/banners":    true,
	"events/intro":      true,
	"events/explore":    true,
	"events/happening":  true,
	"events/sessions":   true,
	"events/days":       true,
	"profiles":          true,
}

var allowedImageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
	"gif":  true,
}

func ValidateImageCategory(category string) error {
	if !ImageCategories[category] {
		return fmt.Errorf("invalid category: %s", category)
	}
	return nil
}

// ValidateImageFile checks the declared content type, the file extension, and
// the actual content. Extension and declared MIME are independent checks; the
// content sniff is what rejects a renamed non-image.
func ValidateImageFile(file *multipart.FileHeader) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("file must be an image, got %s", contentType)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if ext == "" {
		ext = "jpg"
	}
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("invalid image format .%s, allowed: jpg, jpeg, png, webp, gif", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to detect file type: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("file content is not an image (%s)", mtype.String())
	}

	return ext, nil
}

// GenerateImageFilename builds a collision-resistant name: the caller-supplied
// base plus a timestamp, or timestamp plus a random suffix. The base is
// reduced to its last path element so it cannot escape the category directory.
func GenerateImageFilename(base, ext string) string {
	ts := time.Now().UnixMilli()
	if base = sanitizeBaseName(base); base != "" {
		return fmt.Sprintf("%s-%d.%s", base, ts, ext)
	}
	return fmt.Sprintf("%d-%s.%s", ts, randomSuffix(6), ext)
}

func sanitizeBaseName(base string) string {
	base = path.Base(strings.ReplaceAll(base, "\\", "/"))
	if base == "." || base == ".." || base == "/" {
		return ""
	}
	return base
}

func randomSuffix(n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			buf[i] = 'x'
			continue
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf)
}

// SaveImage writes the upload under uploadDir/category/filename, creating the
// category directory if absent, and returns the public path.
func SaveImage(file *multipart.FileHeader, uploadDir, category, filename string) (string, error) {
	destDir := filepath.Join(uploadDir, filepath.FromSlash(category))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(destDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return PublicImagePrefix + category + "/" + filename, nil
}

// DeleteImage removes a previously uploaded image. A missing file is success;
// external URLs outside the public prefix are skipped.
func DeleteImage(uploadDir, imagePath string) error {
	if !strings.HasPrefix(imagePath, PublicImagePrefix) {
		return nil
	}

	rel := strings.TrimPrefix(imagePath, PublicImagePrefix)
	path := filepath.Join(uploadDir, filepath.FromSlash(rel))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
