package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// GenerateQRCodeImage renders content as a 256px PNG under dirPath and returns
// the generated filename.
func GenerateQRCodeImage(content, dirPath string) (string, error) {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create QR directory: %w", err)
	}

	filename := fmt.Sprintf("%s.png", uuid.New().String())
	fullPath := filepath.Join(dirPath, filename)

	if err := qrcode.WriteFile(content, qrcode.Medium, 256, fullPath); err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	return filename, nil
}
