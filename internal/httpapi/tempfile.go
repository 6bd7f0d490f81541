package httpapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// saveUpload copies an uploaded multipart file to a fresh temporary file
// under dir, preserving its original extension so stegocore's
// extension-based format dispatch sees the same carrier family the
// client uploaded.
func saveUpload(fh *multipart.FileHeader, dir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.CreateTemp(dir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copy upload %s: %w", fh.Filename, err)
	}
	return dst.Name(), nil
}

// outputPathFor derives a temp output path in dir carrying ext,
// matching the uploaded cover's carrier family for stegocore's
// output-extension compatibility check.
func outputPathFor(dir, ext string) string {
	return filepath.Join(dir, "output"+ext)
}

// infoTypeForExt reports the MIME type recorded in a key file for a
// lower-cased file extension.
func infoTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".bmp":
		return "image/bmp"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".wav":
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}
