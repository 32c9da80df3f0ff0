package qrcode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode renders data as a 256px PNG under dir and returns the file path.
func GenerateQRCode(data, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("%s.png", filename))
	if err := qrcode.WriteFile(data, qrcode.Medium, 256, filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
