package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"

	// Registered for image.DecodeConfig dimension checks.
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

// Avatar upload constraints. Content is verified by byte signature, not by
// the client-supplied content type.
const (
	MaxAvatarBytes     = 2 << 20
	MinAvatarDimension = 200
	MaxAvatarDimension = 1000
)

var (
	jpegMagic = []byte{0xff, 0xd8}
	pngMagic  = []byte{0x89, 0x50, 0x4e, 0x47}
)

// ObjectStore defines the binary-object storage the avatar service writes
// to. Put stores the object under key and returns a retrievable URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// AvatarService validates and stores user avatar images.
type AvatarService struct {
	store ObjectStore
}

// NewAvatarService creates a new avatar service.
func NewAvatarService(store ObjectStore) *AvatarService {
	return &AvatarService{store: store}
}

// sniffAvatarType identifies the image format from the leading bytes.
func sniffAvatarType(data []byte) (contentType, ext string, err error) {
	switch {
	case len(data) >= 4 && bytes.Equal(data[:4], pngMagic):
		return "image/png", "png", nil
	case len(data) >= 2 && bytes.Equal(data[:2], jpegMagic):
		return "image/jpeg", "jpg", nil
	}
	return "", "", ErrAvatarBadType
}

// Upload validates an avatar image and writes it to the object store,
// returning the public URL. Rejects anything that is not a JPEG or PNG by
// byte signature, larger than MaxAvatarBytes, or outside the
// 200×200..1000×1000 pixel range.
func (s *AvatarService) Upload(ctx context.Context, userID string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxAvatarBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading avatar: %w", err)
	}
	if len(data) > MaxAvatarBytes {
		return "", ErrAvatarTooLarge
	}

	contentType, ext, err := sniffAvatarType(data)
	if err != nil {
		return "", err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", ErrAvatarBadType
	}
	if cfg.Width < MinAvatarDimension || cfg.Height < MinAvatarDimension ||
		cfg.Width > MaxAvatarDimension || cfg.Height > MaxAvatarDimension {
		return "", ErrAvatarBadDimensions
	}

	key := fmt.Sprintf("avatars/%s/%s.%s", userID, uuid.New().String(), ext)
	return s.store.Put(ctx, key, contentType, data)
}
