package service

import (
	"path"
	"strings"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/errors"
	"github.com/Arittroskr32/CyberPiT-backend/internal/logger"
)

const videoSubDir = "video"

// Per-category fixed filenames. The frontend hotlinks these paths, so a
// fresh upload replaces the blob in place instead of accumulating files.
var videoFilenames = map[string]string{
	domain.VideoDesktop: "pc_video.mp4",
	domain.VideoMobile:  "mobile_video.mp4",
}

type VideoService interface {
	Upload(category, name string, upload *domain.PendingUpload) (domain.Video, error)
	List() ([]domain.Video, error)
	Current() (map[string]string, error)
	SetActive(id int64, active bool) (domain.Video, error)
	Delete(id int64) error
}

type VideoStorage interface {
	Videos() ([]domain.Video, error)
	Video(id int64) (domain.Video, error)
	ActiveVideo(category string) (domain.Video, error)
	ReplaceActiveVideo(v domain.Video) (int64, error)
	SetVideoActive(id int64, active bool) error
	DeleteVideo(id int64) error
}

type Videos struct {
	storage VideoStorage
	media   MediaStorage
}

func NewVideos(storage VideoStorage, media MediaStorage) *Videos {
	return &Videos{storage: storage, media: media}
}

// Upload stores the blob under the category's fixed filename and swaps it in
// as the active video for that category.
func (s *Videos) Upload(category, name string, upload *domain.PendingUpload) (domain.Video, error) {
	if !domain.IsValidVideoCategory(category) {
		return domain.Video{}, errors.BadRequest("Invalid video category")
	}

	filename := videoFilenames[category]
	if _, err := s.media.Save(upload.Data, videoSubDir, filename); err != nil {
		return domain.Video{}, err
	}

	video := domain.Video{
		Name:         strings.TrimSpace(name),
		Category:     category,
		Filename:     filename,
		OriginalName: upload.Filename,
		Path:         "/" + path.Join(videoSubDir, filename),
		Size:         upload.SizeBytes,
		MimeType:     upload.MimeType,
	}
	id, err := s.storage.ReplaceActiveVideo(video)
	if err != nil {
		// The blob is already the category's canonical file; leave it so a
		// previously working video keeps serving.
		return domain.Video{}, err
	}

	return s.storage.Video(id)
}

func (s *Videos) List() ([]domain.Video, error) {
	return s.storage.Videos()
}

// Current maps each category to the path the frontend should load. Categories
// without an active upload fall back to the fixed default paths.
func (s *Videos) Current() (map[string]string, error) {
	out := make(map[string]string, len(videoFilenames))
	for category, filename := range videoFilenames {
		out[category] = "/" + path.Join(videoSubDir, filename)
		video, err := s.storage.ActiveVideo(category)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out[category] = video.Path
	}
	return out, nil
}

func (s *Videos) SetActive(id int64, active bool) (domain.Video, error) {
	if err := s.storage.SetVideoActive(id, active); err != nil {
		return domain.Video{}, err
	}
	return s.storage.Video(id)
}

// Delete removes the row and then the blob. Blob removal is best effort:
// a stale file on disk is preferable to a dangling row.
func (s *Videos) Delete(id int64) error {
	video, err := s.storage.Video(id)
	if err != nil {
		return err
	}
	if err := s.storage.DeleteVideo(id); err != nil {
		return err
	}
	if err := s.media.Delete(path.Join(videoSubDir, video.Filename)); err != nil {
		logger.Log.Error("failed to remove video blob", "path", video.Path, "error", err)
	}
	return nil
}
