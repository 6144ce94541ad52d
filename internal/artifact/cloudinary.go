// Package artifact stores verification photos.
package artifact

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/wb-go/wbf/logger"
)

// CloudinaryStore uploads photos to one folder and returns their public id
// as the artifact reference.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger logger.Logger
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string, logger logger.Logger) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStore{cld: cld, folder: folder, logger: logger}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, sessionID string, r io.Reader, filename string) (string, error) {
	params := uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID(sessionID, filename),
		ResourceType: "image",
	}

	res, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("upload to cloudinary: %w", err)
	}
	if res.PublicID == "" {
		return "", fmt.Errorf("upload to cloudinary: no public id returned")
	}

	s.logger.Info("verification artifact uploaded",
		logger.String("session_id", sessionID),
		logger.String("public_id", res.PublicID),
	)

	return res.PublicID, nil
}

// URL returns a viewable link for ref, or "" when none can be built.
func (s *CloudinaryStore) URL(ref string) string {
	img, err := s.cld.Image(ref)
	if err != nil {
		s.logger.Warn("failed to build artifact url",
			logger.String("ref", ref),
			logger.String("error", err.Error()),
		)
		return ""
	}
	u, err := img.String()
	if err != nil {
		s.logger.Warn("failed to build artifact url",
			logger.String("ref", ref),
			logger.String("error", err.Error()),
		)
		return ""
	}
	return u
}

func publicID(sessionID, filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." || base == "_" {
		return sessionID
	}
	return sessionID + "_" + base
}
