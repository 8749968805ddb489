package domain

import "time"

// Contact message statuses.
const (
	ContactUnread  = "unread"
	ContactRead    = "read"
	ContactReplied = "replied"
)

type Contact struct {
	Id            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	AdminResponse string    `json:"adminResponse,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Report statuses.
const (
	ReportNew       = "new"
	ReportReviewing = "reviewing"
	ReportApproved  = "approved"
	ReportFeatured  = "featured"
	ReportRejected  = "rejected"
)

type Report struct {
	Id            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ReporterName  string    `json:"reporterName"`
	ReporterEmail string    `json:"reporterEmail"`
	Category      string    `json:"category"`
	ProjectURL    string    `json:"projectUrl"`
	Status        string    `json:"status"`
	AdminNotes    string    `json:"adminNotes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Feedback struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	Workplace string    `json:"workplace,omitempty"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Team application statuses.
const (
	ApplicationNew       = "new"
	ApplicationReviewing = "reviewing"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
)

type TeamApplication struct {
	Id         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Linkedin   string    `json:"linkedin,omitempty"`
	Interest   string    `json:"interest"`
	Comment    string    `json:"comment"`
	Status     string    `json:"status"`
	AdminNotes string    `json:"adminNotes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
