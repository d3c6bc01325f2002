package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/identity/internal/entity"
)

// syncPicture copies the provider picture onto the profile. Any failure is
// logged and skipped.
func (s *Service) syncPicture(ctx context.Context, profile *entity.Profile, pictureURL string) {
	if !s.cfg.Social.SyncPictureOnLogin || s.pictures == nil || pictureURL == "" {
		return
	}

	pic, err := s.pictures.Download(ctx, pictureURL)
	if err != nil {
		slog.WarnContext(ctx, "social picture download failed", "profile_id", profile.ID, "error", err)
		return
	}

	if len(pic.Data) == 0 {
		return
	}

	name := pictureName(profile.ID, pic.Extension)

	if err := s.profiles.UpdatePicture(ctx, profile.ID, name, pic.ContentType, pic.Data); err != nil {
		slog.WarnContext(ctx, "failed to store social picture", "profile_id", profile.ID, "error", err)
		return
	}

	profile.PictureName = name
	profile.PictureContentType = pic.ContentType
	profile.Picture = pic.Data

	slog.InfoContext(ctx, "social picture synced",
		"profile_id", profile.ID, "bytes", len(pic.Data), "content_type", pic.ContentType)
}

func pictureName(profileID uuid.UUID, extension string) string {
	id := uuid.Must(uuid.NewV4())
	if extension == "" {
		extension = "jpg"
	}

	return fmt.Sprintf("social-%s-%s.%s", profileID, hex.EncodeToString(id.Bytes())[:10], extension)
}
