// Package api defines the request and response bodies of the HTTP surface.
// Field names follow the camelCase convention the frontend expects.
package api

import (
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/mailer"
)

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LoginRequest struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	Admin   domain.Admin `json:"admin"`
}

type AdminResponse struct {
	Success bool         `json:"success"`
	Admin   domain.Admin `json:"admin"`
}

type BlogRequest struct {
	Title       string   `validate:"required" json:"title"`
	Content     string   `validate:"required" json:"content"`
	Author      string   `validate:"required" json:"author"`
	Category    string   `validate:"required" json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	BlogURL     string   `json:"blogUrl"`
	IsPublished *bool    `json:"isPublished"`
	IsFeatured  bool     `json:"isFeatured"`
}

type BlogListResponse struct {
	Success    bool              `json:"success"`
	Blogs      []domain.Blog     `json:"blogs"`
	Pagination domain.Pagination `json:"pagination"`
}

type BlogResponse struct {
	Success bool        `json:"success"`
	Blog    domain.Blog `json:"blog"`
}

type BlogRenderResponse struct {
	Success bool   `json:"success"`
	HTML    string `json:"html"`
}

// BlogFeaturedResponse carries the landing page strip, no pagination.
type BlogFeaturedResponse struct {
	Success bool          `json:"success"`
	Blogs   []domain.Blog `json:"blogs"`
}

// ImageUploadResponse carries the stored path of an uploaded blog image.
type ImageUploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

type BlogCategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

type BlogCounterResponse struct {
	Success bool  `json:"success"`
	Count   int64 `json:"count"`
}

type ContactRequest struct {
	Name    string `validate:"required" json:"name"`
	Email   string `validate:"required,email" json:"email"`
	Subject string `validate:"required" json:"subject"`
	Message string `validate:"required" json:"message"`
}

type UpdateContactStatusRequest struct {
	Status        string `validate:"required" json:"status"`
	AdminResponse string `json:"adminResponse"`
}

type ContactListResponse struct {
	Success  bool             `json:"success"`
	Contacts []domain.Contact `json:"contacts"`
}

type ContactResponse struct {
	Success bool           `json:"success"`
	Contact domain.Contact `json:"contact"`
}

type ReportRequest struct {
	Title         string `validate:"required" json:"title"`
	Description   string `validate:"required" json:"description"`
	ReporterName  string `validate:"required" json:"reporterName"`
	ReporterEmail string `validate:"required,email" json:"reporterEmail"`
	Category      string `json:"category"`
	ProjectURL    string `json:"projectUrl"`
}

type UpdateReportStatusRequest struct {
	Status     string `validate:"required" json:"status"`
	AdminNotes string `json:"adminNotes"`
}

type ReportListResponse struct {
	Success bool            `json:"success"`
	Reports []domain.Report `json:"reports"`
}

type ReportResponse struct {
	Success bool          `json:"success"`
	Report  domain.Report `json:"report"`
}

type FeedbackRequest struct {
	Name      string `validate:"required" json:"name"`
	Email     string `validate:"required,email" json:"email"`
	Role      string `json:"role"`
	Workplace string `json:"workplace"`
	Comment   string `validate:"required" json:"comment"`
	Rating    int    `validate:"required,min=1,max=5" json:"rating"`
}

type SetFeaturedRequest struct {
	Featured bool `json:"featured"`
}

type FeedbackListResponse struct {
	Success  bool              `json:"success"`
	Feedback []domain.Feedback `json:"feedback"`
}

type FeedbackResponse struct {
	Success  bool            `json:"success"`
	Feedback domain.Feedback `json:"feedback"`
}

type ProjectRequest struct {
	Title       string   `validate:"required" json:"title"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Description string   `validate:"required" json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
	Featured    bool     `json:"featured"`
	Status      string   `json:"status"`
	SortOrder   int      `json:"order"`
}

type ProjectListResponse struct {
	Success  bool             `json:"success"`
	Projects []domain.Project `json:"projects"`
}

type ProjectResponse struct {
	Success bool           `json:"success"`
	Project domain.Project `json:"project"`
}

type TeamMemberRequest struct {
	Name      string `validate:"required" json:"name"`
	Role      string `validate:"required" json:"role"`
	Image     string `json:"image"`
	Bio       string `json:"bio"`
	SortOrder int    `json:"order"`
	IsActive  *bool  `json:"isActive"`
}

type TeamMemberListResponse struct {
	Success bool                `json:"success"`
	Members []domain.TeamMember `json:"members"`
}

type TeamMemberResponse struct {
	Success bool              `json:"success"`
	Member  domain.TeamMember `json:"member"`
}

type ApplicationRequest struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Phone    string `json:"phone"`
	Linkedin string `json:"linkedin"`
	Interest string `validate:"required" json:"interest"`
	Comment  string `json:"comment"`
}

type UpdateApplicationStatusRequest struct {
	Status     string `validate:"required" json:"status"`
	AdminNotes string `json:"adminNotes"`
}

type ApplicationListResponse struct {
	Success      bool                     `json:"success"`
	Applications []domain.TeamApplication `json:"applications"`
}

type ApplicationResponse struct {
	Success     bool                   `json:"success"`
	Application domain.TeamApplication `json:"application"`
}

type SubscribeRequest struct {
	Email string `validate:"required,email" json:"email"`
}

type SubscriptionListResponse struct {
	Success       bool                  `json:"success"`
	Subscriptions []domain.Subscription `json:"subscriptions"`
}

type SubscriptionResponse struct {
	Success      bool                `json:"success"`
	Subscription domain.Subscription `json:"subscription"`
}

type SubscriptionToggleRequest struct {
	IsActive bool `json:"isActive"`
}

type BatchDeleteRequest struct {
	Ids []int64 `validate:"required,min=1" json:"ids"`
}

type NewsletterRequest struct {
	Subject string `validate:"required" json:"subject"`
	Message string `validate:"required" json:"message"`
}

// NewsletterResponse wraps the dispatch outcome. Sent/failed counts and any
// surfaced per-recipient errors come straight from the mail run.
type NewsletterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

func NewNewsletterResponse(outcome mailer.Outcome, message string) NewsletterResponse {
	return NewsletterResponse{
		Success: outcome.Success,
		Message: message,
		Sent:    outcome.Sent,
		Failed:  outcome.Failed,
		Errors:  outcome.Errors,
	}
}

type DeletedCountResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

type VideoToggleRequest struct {
	IsActive bool `json:"isActive"`
}

type VideoListResponse struct {
	Success bool           `json:"success"`
	Videos  []domain.Video `json:"videos"`
}

type VideoResponse struct {
	Success bool         `json:"success"`
	Video   domain.Video `json:"video"`
}

// CurrentVideosResponse maps category to the path the hero player loads.
type CurrentVideosResponse struct {
	Success bool              `json:"success"`
	Videos  map[string]string `json:"videos"`
}

type DashboardStatsResponse struct {
	Success bool                  `json:"success"`
	Stats   domain.DashboardStats `json:"stats"`
}
