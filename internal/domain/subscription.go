package domain

import "time"

type Subscription struct {
	Id               int64     `json:"id"`
	Email            string    `json:"email"`
	IsActive         bool      `json:"isActive"`
	UnsubscribeToken string    `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	Contacts            int64 `json:"contacts"`
	UnreadContacts      int64 `json:"unreadContacts"`
	Subscriptions       int64 `json:"subscriptions"`
	TeamApplications    int64 `json:"teamApplications"`
	PendingApplications int64 `json:"pendingApplications"`
	TeamMembers         int64 `json:"teamMembers"`
	Projects            int64 `json:"projects"`
	Reports             int64 `json:"reports"`
	NewReports          int64 `json:"newReports"`
	Feedback            int64 `json:"feedback"`
	Videos              int64 `json:"videos"`
}
