package domain

import (
	"io"
	"time"
)

// Video categories. At most one video per category may be active.
const (
	VideoDesktop = "desktop"
	VideoMobile  = "mobile"
)

func IsValidVideoCategory(category string) bool {
	return category == VideoDesktop || category == VideoMobile
}

type Video struct {
	Id           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"type"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimeType"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PendingUpload is a validated, not-yet-stored file from a multipart request.
type PendingUpload struct {
	Filename    string
	SizeBytes   int64
	MimeType    string
	ImageWidth  *int
	ImageHeight *int
	Data        io.Reader
}
