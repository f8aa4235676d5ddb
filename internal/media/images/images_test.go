package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
)

func TestValidateUploadAllowsImages(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"photo.PNG", "image/png"},
		{"photo.gif", "image/gif"},
		{"photo.webp", "image/webp"},
		{"photo.jpg", "image/jpeg; charset=binary"},
	}
	for _, tt := range tests {
		assert.NoError(t, ValidateUpload(tt.name, tt.contentType, 1024), tt.name)
	}
}

func TestValidateUploadRejectsNonImages(t *testing.T) {
	err := ValidateUpload("notes.txt", "text/plain", 10)
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrUnsupportedMedia))

	// Image extension with a lying content type is still rejected.
	err = ValidateUpload("sneaky.png", "application/octet-stream", 10)
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrUnsupportedMedia))
}

func TestValidateUploadRejectsOversize(t *testing.T) {
	err := ValidateUpload("big.jpg", "image/jpeg", MaxUploadBytes+1)
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrPayloadTooLarge))

	assert.NoError(t, ValidateUpload("fits.jpg", "image/jpeg", MaxUploadBytes))
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename("My Photo.JPG")
	assert.True(t, strings.HasPrefix(name, "journal-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotEqual(t, name, GenerateFilename("My Photo.JPG"))
}

func TestStorageSaveAndDelete(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Save("journal-1.jpg", bytes.NewReader([]byte("fake image"))))
	assert.True(t, storage.Exists("journal-1.jpg"))

	// Never overwrites an existing photo.
	err = storage.Save("journal-1.jpg", bytes.NewReader([]byte("other")))
	assert.Error(t, err)

	require.NoError(t, storage.Delete("journal-1.jpg"))
	assert.False(t, storage.Exists("journal-1.jpg"))

	// Deleting again is fine.
	assert.NoError(t, storage.Delete("journal-1.jpg"))
}

func TestStoragePathRejectsTraversal(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Path("../escape.jpg")
	assert.Error(t, err)

	_, err = storage.Path("")
	assert.Error(t, err)
}

func TestComputeBlurHash(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 120; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y * 3), B: 128, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	hash, err := ComputeBlurHash(path)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestComputeBlurHashRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := ComputeBlurHash(path)
	assert.Error(t, err)
}
