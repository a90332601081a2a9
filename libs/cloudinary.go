package libs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"shopping-cart/config"
)

// ErrNotConfigured signals that no CLOUDINARY_URL is set; callers fall
// back to serving the locally stored file.
var ErrNotConfigured = errors.New("cloudinary not configured")

// UploadProductImage pushes a locally saved image to Cloudinary and
// returns its secure URL.
func UploadProductImage(ctx context.Context, localPath string) (string, error) {
	if config.AppConfig.CloudinaryURL == "" {
		return "", ErrNotConfigured
	}

	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary init: %w", err)
	}

	resp, err := cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("product_%d", time.Now().UnixNano()),
		Folder:   "products",
	})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.SecureURL == "" {
		return "", errors.New("cloudinary returned no URL")
	}
	return resp.SecureURL, nil
}
