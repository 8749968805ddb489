package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

func newTeamHandler(svc *MockTeamService) *Handler {
	return New(nil, nil, nil, nil, nil, nil, svc, nil, nil, nil, testConfig())
}

func TestGetApplicationHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &MockTeamService{
			ApplicationFunc: func(id int64) (domain.TeamApplication, error) {
				assert.EqualValues(t, 6, id)
				return domain.TeamApplication{Id: id, Name: "Rin", Interest: "red team"}, nil
			},
		}
		h := newTeamHandler(svc)

		req := withIDParam(httptest.NewRequest(http.MethodGet, "/v1/admin/applications/6", nil), "6")
		rr := httptest.NewRecorder()
		h.GetApplication(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.ApplicationResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Rin", resp.Application.Name)
	})

	t.Run("missing application", func(t *testing.T) {
		svc := &MockTeamService{
			ApplicationFunc: func(id int64) (domain.TeamApplication, error) {
				return domain.TeamApplication{}, internal_errors.NotFound("Application not found")
			},
		}
		h := newTeamHandler(svc)

		req := withIDParam(httptest.NewRequest(http.MethodGet, "/v1/admin/applications/99", nil), "99")
		rr := httptest.NewRecorder()
		h.GetApplication(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	})
}

func TestClearApplicationsHandler(t *testing.T) {
	svc := &MockTeamService{
		DeleteAllApplicationsFunc: func() (int64, error) { return 2, nil },
	}
	h := newTeamHandler(svc)

	rr := httptest.NewRecorder()
	h.ClearApplications(rr, httptest.NewRequest(http.MethodDelete, "/v1/admin/applications", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "All applications cleared successfully")
}
