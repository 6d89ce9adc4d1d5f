package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/member"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
)

const routerTestSecret = "test-secret-key-for-jwt"

// stubOK stands in for every handler method so the router can be
// exercised without services or a database behind it.
func stubOK(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type stubPunchHandler struct{}

func (stubPunchHandler) Record(w http.ResponseWriter, r *http.Request) { stubOK(w, r) }
func (stubPunchHandler) Today(w http.ResponseWriter, r *http.Request)  { stubOK(w, r) }

type stubScheduleHandler struct{}

func (stubScheduleHandler) Get(w http.ResponseWriter, r *http.Request)          { stubOK(w, r) }
func (stubScheduleHandler) Update(w http.ResponseWriter, r *http.Request)       { stubOK(w, r) }
func (stubScheduleHandler) UpsertShifts(w http.ResponseWriter, r *http.Request) { stubOK(w, r) }
func (stubScheduleHandler) ListShifts(w http.ResponseWriter, r *http.Request)   { stubOK(w, r) }

type stubJustificationHandler struct{}

func (stubJustificationHandler) Submit(w http.ResponseWriter, r *http.Request)        { stubOK(w, r) }
func (stubJustificationHandler) ListMine(w http.ResponseWriter, r *http.Request)      { stubOK(w, r) }
func (stubJustificationHandler) Review(w http.ResponseWriter, r *http.Request)        { stubOK(w, r) }
func (stubJustificationHandler) ListForReview(w http.ResponseWriter, r *http.Request) { stubOK(w, r) }

type stubReportHandler struct{}

func (stubReportHandler) MyCalendar(w http.ResponseWriter, r *http.Request)      { stubOK(w, r) }
func (stubReportHandler) Inconsistencies(w http.ResponseWriter, r *http.Request) { stubOK(w, r) }
func (stubReportHandler) MemberSummary(w http.ResponseWriter, r *http.Request)   { stubOK(w, r) }

func newTestRouter(t *testing.T) (jwt.Service, http.Handler) {
	t.Helper()
	jwtSvc := jwt.NewJWTService(routerTestSecret, "1h")
	router := NewRouter(jwtSvc, stubPunchHandler{}, stubScheduleHandler{}, stubJustificationHandler{}, stubReportHandler{})
	return jwtSvc, router
}

func bearerRequest(t *testing.T, jwtSvc jwt.Service, method, target string, role member.Role) *http.Request {
	t.Helper()
	token, _, err := jwtSvc.GenerateAccessToken("member-1", "company-1", role)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRouter_Heartbeat(t *testing.T) {
	_, router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	_, router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/punches/today", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_EmployeeRoutesReachHandlers(t *testing.T) {
	jwtSvc, router := newTestRouter(t)

	routes := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/v1/punches"},
		{http.MethodGet, "/api/v1/punches/today"},
		{http.MethodGet, "/api/v1/calendar"},
		{http.MethodPost, "/api/v1/justifications"},
		{http.MethodGet, "/api/v1/justifications"},
	}
	for _, route := range routes {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, bearerRequest(t, jwtSvc, route.method, route.target, member.RoleEmployee))
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", route.method, route.target)
	}
}

func TestRouter_AdminRoutesRejectEmployees(t *testing.T) {
	jwtSvc, router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, bearerRequest(t, jwtSvc, http.MethodGet, "/api/v1/admin/inconsistencies", member.RoleEmployee))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_AdminRoutesReachHandlers(t *testing.T) {
	jwtSvc, router := newTestRouter(t)

	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/v1/admin/members/member-2/schedule"},
		{http.MethodPut, "/api/v1/admin/members/member-2/schedule"},
		{http.MethodPost, "/api/v1/admin/members/member-2/shifts"},
		{http.MethodGet, "/api/v1/admin/members/member-2/shifts"},
		{http.MethodGet, "/api/v1/admin/members/member-2/summary"},
		{http.MethodGet, "/api/v1/admin/justifications"},
		{http.MethodPatch, "/api/v1/admin/justifications/just-1"},
		{http.MethodGet, "/api/v1/admin/inconsistencies"},
	}
	for _, route := range routes {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, bearerRequest(t, jwtSvc, route.method, route.target, member.RoleAdmin))
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", route.method, route.target)
	}
}
