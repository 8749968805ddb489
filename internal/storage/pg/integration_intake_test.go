package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

func TestContactStorage(t *testing.T) {
	t.Run("submit and list newest first", func(t *testing.T) {
		clearTable(t, "contacts")

		_, err := storage.SaveContact(domain.Contact{Name: "A", Email: "a@example.com", Subject: "Hi", Message: "first"})
		require.NoError(t, err)
		_, err = storage.SaveContact(domain.Contact{Name: "B", Email: "b@example.com", Subject: "Yo", Message: "second"})
		require.NoError(t, err)

		contacts, err := storage.Contacts()
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, domain.ContactUnread, contacts[0].Status)
	})

	t.Run("status update keeps response when empty", func(t *testing.T) {
		clearTable(t, "contacts")

		id, err := storage.SaveContact(domain.Contact{Name: "A", Email: "a@example.com", Subject: "Hi", Message: "m"})
		require.NoError(t, err)

		require.NoError(t, storage.UpdateContactStatus(id, domain.ContactReplied, "Thanks, fixed."))
		require.NoError(t, storage.UpdateContactStatus(id, domain.ContactRead, ""))

		c, err := storage.Contact(id)
		require.NoError(t, err)
		assert.Equal(t, domain.ContactRead, c.Status)
		assert.Equal(t, "Thanks, fixed.", c.AdminResponse)
	})

	t.Run("missing contact", func(t *testing.T) {
		clearTable(t, "contacts")

		_, err := storage.Contact(7)
		assert.True(t, internal_errors.IsNotFound(err))
		assert.True(t, internal_errors.IsNotFound(storage.DeleteContact(7)))
	})

	t.Run("clear all returns count", func(t *testing.T) {
		clearTable(t, "contacts")

		_, err := storage.SaveContact(domain.Contact{Name: "A", Email: "a@example.com", Subject: "s", Message: "m"})
		require.NoError(t, err)
		_, err = storage.SaveContact(domain.Contact{Name: "B", Email: "b@example.com", Subject: "s", Message: "m"})
		require.NoError(t, err)

		count, err := storage.DeleteAllContacts()
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)

		contacts, err := storage.Contacts()
		require.NoError(t, err)
		assert.Empty(t, contacts)
	})
}

func TestReportStorage(t *testing.T) {
	t.Run("featured includes approved", func(t *testing.T) {
		clearTable(t, "reports")

		newID, err := storage.SaveReport(domain.Report{Title: "n", Description: "d", ReporterName: "r", ReporterEmail: "r@example.com", Category: "web"})
		require.NoError(t, err)
		featID, err := storage.SaveReport(domain.Report{Title: "f", Description: "d", ReporterName: "r", ReporterEmail: "r@example.com", Category: "web"})
		require.NoError(t, err)
		apprID, err := storage.SaveReport(domain.Report{Title: "a", Description: "d", ReporterName: "r", ReporterEmail: "r@example.com", Category: "web"})
		require.NoError(t, err)

		require.NoError(t, storage.UpdateReportStatus(featID, domain.ReportFeatured, ""))
		require.NoError(t, storage.UpdateReportStatus(apprID, domain.ReportApproved, "solid find"))

		featured, err := storage.FeaturedReports()
		require.NoError(t, err)
		assert.Len(t, featured, 2)

		r, err := storage.Report(newID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReportNew, r.Status)
	})

	t.Run("list filters by status", func(t *testing.T) {
		clearTable(t, "reports")

		id, err := storage.SaveReport(domain.Report{Title: "t", Description: "d", ReporterName: "r", ReporterEmail: "r@example.com", Category: "web"})
		require.NoError(t, err)
		require.NoError(t, storage.UpdateReportStatus(id, domain.ReportReviewing, ""))

		reports, err := storage.Reports(domain.ReportReviewing)
		require.NoError(t, err)
		assert.Len(t, reports, 1)

		reports, err = storage.Reports(domain.ReportRejected)
		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("clear all returns count", func(t *testing.T) {
		clearTable(t, "reports")

		_, err := storage.SaveReport(domain.Report{Title: "t", Description: "d", ReporterName: "r", ReporterEmail: "r@example.com", Category: "web"})
		require.NoError(t, err)

		count, err := storage.DeleteAllReports()
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}

func TestFeedbackStorage(t *testing.T) {
	t.Run("public listing puts featured first then newest", func(t *testing.T) {
		clearTable(t, "feedback")

		older, err := storage.SaveFeedback(domain.Feedback{Name: "a", Email: "a@example.com", Comment: "ok", Rating: 3})
		require.NoError(t, err)
		newer, err := storage.SaveFeedback(domain.Feedback{Name: "b", Email: "b@example.com", Comment: "great", Rating: 5})
		require.NoError(t, err)
		plain, err := storage.SaveFeedback(domain.Feedback{Name: "c", Email: "c@example.com", Comment: "meh", Rating: 2})
		require.NoError(t, err)

		require.NoError(t, storage.SetFeedbackFeatured(older, true))
		require.NoError(t, storage.SetFeedbackFeatured(newer, true))

		all, err := storage.PublicFeedback()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, newer, all[0].Id)
		assert.Equal(t, older, all[1].Id)
		assert.Equal(t, plain, all[2].Id)
	})
}

func TestTeamStorage(t *testing.T) {
	t.Run("members filtered by active", func(t *testing.T) {
		clearTable(t, "team_members")

		activeID, err := storage.SaveTeamMember(domain.TeamMember{Name: "A", Role: "Lead", Bio: "b", SortOrder: 1, IsActive: true})
		require.NoError(t, err)
		_, err = storage.SaveTeamMember(domain.TeamMember{Name: "B", Role: "Alum", Bio: "b", SortOrder: 2, IsActive: false})
		require.NoError(t, err)

		members, err := storage.TeamMembers(true)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, activeID, members[0].Id)

		members, err = storage.TeamMembers(false)
		require.NoError(t, err)
		assert.Len(t, members, 2)
	})

	t.Run("application status update", func(t *testing.T) {
		clearTable(t, "team_applications")

		id, err := storage.SaveApplication(domain.TeamApplication{Name: "A", Email: "a@example.com", Phone: "123", Interest: "red team", Comment: "hi"})
		require.NoError(t, err)

		require.NoError(t, storage.UpdateApplicationStatus(id, domain.ApplicationAccepted, "welcome"))

		app, err := storage.Application(id)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationAccepted, app.Status)
		assert.Equal(t, "welcome", app.AdminNotes)

		apps, err := storage.Applications(domain.ApplicationNew)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})

	t.Run("clear all applications returns count", func(t *testing.T) {
		clearTable(t, "team_applications")

		_, err := storage.SaveApplication(domain.TeamApplication{Name: "A", Email: "a@example.com", Phone: "1", Interest: "i", Comment: "c"})
		require.NoError(t, err)
		_, err = storage.SaveApplication(domain.TeamApplication{Name: "B", Email: "b@example.com", Phone: "2", Interest: "i", Comment: "c"})
		require.NoError(t, err)

		count, err := storage.DeleteAllApplications()
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})
}

func TestDashboardStats(t *testing.T) {
	clearTable(t, "contacts")
	clearTable(t, "reports")
	clearTable(t, "feedback")
	clearTable(t, "projects")
	clearTable(t, "team_members")
	clearTable(t, "team_applications")
	clearTable(t, "subscriptions")
	clearTable(t, "videos")

	readID, err := storage.SaveContact(domain.Contact{Name: "A", Email: "a@example.com", Subject: "s", Message: "m"})
	require.NoError(t, err)
	require.NoError(t, storage.UpdateContactStatus(readID, domain.ContactRead, ""))
	_, err = storage.SaveContact(domain.Contact{Name: "B", Email: "b@example.com", Subject: "s", Message: "m"})
	require.NoError(t, err)

	_, err = storage.SaveReport(domain.Report{Title: "t", Description: "d", ReporterName: "r", ReporterEmail: "r@example.com", Category: "web"})
	require.NoError(t, err)
	_, _, _, err = storage.SaveSubscription("a@example.com", "tok")
	require.NoError(t, err)
	_, err = storage.SaveApplication(domain.TeamApplication{Name: "A", Email: "a@example.com", Phone: "1", Interest: "i", Comment: "c"})
	require.NoError(t, err)
	_, err = storage.SaveTeamMember(domain.TeamMember{Name: "A", Role: "r", Bio: "b", IsActive: true})
	require.NoError(t, err)

	_, err = storage.SaveProject(domain.Project{Title: "live", Date: "2026", Category: "ctf", Description: "d", Tags: []string{}, Status: domain.ProjectActive})
	require.NoError(t, err)
	_, err = storage.SaveProject(domain.Project{Title: "old", Date: "2024", Category: "ctf", Description: "d", Tags: []string{}, Status: domain.ProjectArchived})
	require.NoError(t, err)

	// Replacing leaves the first upload inactive, so only one video counts.
	_, err = storage.ReplaceActiveVideo(domain.Video{Name: "v1", Category: "homepage", Filename: "a.mp4", OriginalName: "a.mp4", Path: "videos/a.mp4", Size: 1, MimeType: "video/mp4"})
	require.NoError(t, err)
	_, err = storage.ReplaceActiveVideo(domain.Video{Name: "v2", Category: "homepage", Filename: "b.mp4", OriginalName: "b.mp4", Path: "videos/b.mp4", Size: 1, MimeType: "video/mp4"})
	require.NoError(t, err)

	stats, err := storage.DashboardStats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Contacts)
	assert.EqualValues(t, 1, stats.UnreadContacts)
	assert.EqualValues(t, 1, stats.Reports)
	assert.EqualValues(t, 1, stats.NewReports)
	assert.EqualValues(t, 1, stats.Subscriptions)
	assert.EqualValues(t, 1, stats.TeamApplications)
	assert.EqualValues(t, 1, stats.PendingApplications)
	assert.EqualValues(t, 1, stats.TeamMembers)
	assert.EqualValues(t, 1, stats.Projects)
	assert.EqualValues(t, 1, stats.Videos)
}
