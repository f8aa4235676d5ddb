// Package images stores journal photo uploads and computes their BlurHash
// placeholders.
package images

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
	"github.com/portfoliohub/hub-server/internal/id"
)

// MaxUploadBytes is the ceiling for a single journal photo upload.
const MaxUploadBytes = 5 << 20 // 5 MiB

// allowedExtensions is the upload allow-list. Both the filename extension
// and the declared content type must pass.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateUpload checks the original filename and declared content type
// against the allow-list, and the size against the upload ceiling.
func ValidateUpload(originalName, contentType string, size int64) error {
	if size > MaxUploadBytes {
		return domainerrors.PayloadTooLarge("photo exceeds the 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return domainerrors.UnsupportedMedia("only image files are allowed (jpeg, jpg, png, gif, webp)")
	}

	// Content types can carry parameters ("image/jpeg; charset=binary").
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))
	if !allowedContentTypes[mediaType] {
		return domainerrors.UnsupportedMedia("only image files are allowed (jpeg, jpg, png, gif, webp)")
	}

	return nil
}

// GenerateFilename produces a unique stored name for an upload, keeping the
// original extension: journal-<unix-millis>-<suffix><ext>.
func GenerateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("journal-%d-%s%s", time.Now().UnixMilli(), id.MustSuffix(9), ext)
}
