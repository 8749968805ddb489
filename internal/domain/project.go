package domain

import "time"

// Project statuses.
const (
	ProjectActive    = "active"
	ProjectUpcoming  = "upcoming"
	ProjectCompleted = "completed"
	ProjectArchived  = "archived"
)

type Project struct {
	Id          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	Link        string    `json:"link"`
	Featured    bool      `json:"featured"`
	Status      string    `json:"status"`
	SortOrder   int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func IsValidProjectStatus(status string) bool {
	switch status {
	case ProjectActive, ProjectUpcoming, ProjectCompleted, ProjectArchived:
		return true
	}
	return false
}

type TeamMember struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Image     string    `json:"image"`
	Bio       string    `json:"bio"`
	SortOrder int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
