package pg

import (
	"fmt"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
)

// DashboardStats gathers every dashboard counter in one round trip.
func (s *Storage) DashboardStats() (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := s.db.QueryRow(`
        SELECT
            (SELECT COUNT(*) FROM contacts),
            (SELECT COUNT(*) FROM contacts WHERE status = 'unread'),
            (SELECT COUNT(*) FROM subscriptions WHERE is_active),
            (SELECT COUNT(*) FROM team_applications),
            (SELECT COUNT(*) FROM team_applications WHERE status = 'new'),
            (SELECT COUNT(*) FROM team_members WHERE is_active),
            (SELECT COUNT(*) FROM projects WHERE status <> 'archived'),
            (SELECT COUNT(*) FROM reports),
            (SELECT COUNT(*) FROM reports WHERE status = 'new'),
            (SELECT COUNT(*) FROM feedback),
            (SELECT COUNT(*) FROM videos WHERE is_active)`).Scan(
		&stats.Contacts, &stats.UnreadContacts, &stats.Subscriptions,
		&stats.TeamApplications, &stats.PendingApplications, &stats.TeamMembers,
		&stats.Projects, &stats.Reports, &stats.NewReports, &stats.Feedback, &stats.Videos)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to query dashboard stats: %w", err)
	}
	return stats, nil
}
