// Package storage implements the on-disk file store used for client
// avatars.  Images are keyed <user_id>/avatar.<ext> with overwrite
// semantics, so re-uploading replaces the previous avatar in place and the
// public URL stays stable.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxAvatarBytes caps avatar uploads at 2 MiB.  The cap is enforced
// before any decode or disk write happens.
const MaxAvatarBytes = 2 * 1024 * 1024

// avatarMaxDim bounds the stored image; larger uploads are scaled down.
const avatarMaxDim = 512

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("image exceeds 2MB limit")
)

// AvatarStore writes avatars under Dir and builds public links rooted at
// BaseURL, which the HTTP server serves statically.
type AvatarStore struct {
	Dir     string
	BaseURL string
}

func NewAvatarStore(dir, baseURL string) *AvatarStore {
	return &AvatarStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

// ValidateUpload applies the client-side constraints server-side as well:
// the declared MIME type must start with image/ and the payload must not
// exceed MaxAvatarBytes.  It runs before any byte of the file is read.
func ValidateUpload(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	if size > MaxAvatarBytes {
		return ErrTooLarge
	}
	return nil
}

// Save validates, decodes and stores an avatar for the given user,
// returning the public URL to write onto the profile row.  The image is
// downscaled to fit avatarMaxDim so an oversized photo does not get served
// as-is on every dashboard load.
func (s *AvatarStore) Save(userID uint64, filename, contentType string, size int64, r io.Reader) (string, error) {
	if err := ValidateUpload(contentType, size); err != nil {
		return "", err
	}

	// Decoding doubles as content verification: a mislabelled non-image
	// body fails here before anything is written.
	img, err := imaging.Decode(io.LimitReader(r, MaxAvatarBytes+1), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrNotImage
	}
	if img.Bounds().Dx() > avatarMaxDim || img.Bounds().Dy() > avatarMaxDim {
		img = imaging.Fit(img, avatarMaxDim, avatarMaxDim, imaging.Lanczos)
	}

	ext := normalizeExt(filename)
	dir := filepath.Join(s.Dir, fmt.Sprintf("%d", userID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "avatar."+ext)
	if err := imaging.Save(img, path); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/avatars/%d/avatar.%s", s.BaseURL, userID, ext), nil
}

// normalizeExt maps the uploaded filename to a supported output format,
// defaulting to png when the extension is missing or unknown.
func normalizeExt(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "jpg", "jpeg":
		return "jpg"
	case "gif":
		return "gif"
	case "bmp":
		return "bmp"
	case "tif", "tiff":
		return "tif"
	default:
		return "png"
	}
}
