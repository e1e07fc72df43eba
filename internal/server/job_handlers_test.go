// internal/server/job_handlers_test.go
package server

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Jobs Page Tests
// ==========================

func portalJobs() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"_id": "j1", "title": "Data Analyst", "type": "full-time",
			"company": map[string]interface{}{"name": "Acme"},
			"country": "US", "state": "CA", "city": "SF",
			"experience": map[string]interface{}{"min": 0, "max": 2},
		},
		{
			"_id": "j2", "title": "Data Engineer", "type": "contract",
			"company": map[string]interface{}{"name": "Initech"},
			"country": "US", "state": "NY", "city": "NYC",
			"experience": map[string]interface{}{"min": 3, "max": 6},
		},
	}
}

func TestListJobs_ReturnsAllWithFacets(t *testing.T) {
	portal := newFakePortal(t)
	portal.setJobs(portalJobs())
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	rec := doJSON(t, s, http.MethodGet, "/api/jobs", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["data"], 2)

	facets := body["facets"].(map[string]interface{})
	assert.ElementsMatch(t, []interface{}{"US"}, facets["countries"])
	assert.ElementsMatch(t, []interface{}{"contract", "full-time"}, facets["types"])
	assert.Nil(t, facets["states"], "state facet needs a selected country")
}

func TestListJobs_FreeTextFilter(t *testing.T) {
	portal := newFakePortal(t)
	portal.setJobs(portalJobs())
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	rec := doJSON(t, s, http.MethodGet, "/api/jobs?search=ACME", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Data Analyst", data[0].(map[string]interface{})["title"])
}

func TestListJobs_FacetFiltersAndDependentOptions(t *testing.T) {
	portal := newFakePortal(t)
	portal.setJobs(portalJobs())
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	rec := doJSON(t, s, http.MethodGet, "/api/jobs?country=US&state=NY", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "j2", data[0].(map[string]interface{})["_id"])

	facets := body["facets"].(map[string]interface{})
	assert.ElementsMatch(t, []interface{}{"CA", "NY"}, facets["states"])
	assert.ElementsMatch(t, []interface{}{"NYC"}, facets["cities"])
}

func TestListJobs_ExperienceBounds(t *testing.T) {
	portal := newFakePortal(t)
	portal.setJobs(portalJobs())
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	rec := doJSON(t, s, http.MethodGet, "/api/jobs?experienceMin=3&experienceMax=6", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "j2", data[0].(map[string]interface{})["_id"])
}

// ==========================
// Post / Delete Job Tests
// ==========================

func validJobPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Backend Engineer",
		"description": "Go services",
		"type":        "full-time",
		"experience":  map[string]interface{}{"min": 1, "max": 4},
	}
}

func TestCreateJob_SeekerForbidden(t *testing.T) {
	portal := newFakePortal(t)
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	rec := doJSON(t, s, http.MethodPost, "/api/jobs", validJobPayload(), cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeBody(t, rec)["error"])
}

func TestCreateJob_SchemaRejectsIncompletePayload(t *testing.T) {
	portal := newFakePortal(t)
	portal.setRole("recruiter")
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "recruiter")

	payload := validJobPayload()
	delete(payload, "title")

	rec := doJSON(t, s, http.MethodPost, "/api/jobs", payload, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeBody(t, rec)["error"])
}

func TestCreateJob_SchemaRejectsUnknownType(t *testing.T) {
	portal := newFakePortal(t)
	portal.setRole("recruiter")
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "recruiter")

	payload := validJobPayload()
	payload["type"] = "gig"

	rec := doJSON(t, s, http.MethodPost, "/api/jobs", payload, cookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateJob_RecruiterSucceeds(t *testing.T) {
	portal := newFakePortal(t)
	portal.setRole("recruiter")
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "recruiter")

	rec := doJSON(t, s, http.MethodPost, "/api/jobs", validJobPayload(), cookie)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
}

// ==========================
// Apply Tests
// ==========================

func multipartResume(t *testing.T, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="resume"; filename="resume.pdf"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = io.WriteString(part, "%PDF-1.4 fake")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func doMultipart(t *testing.T, s *Server, path string, body *bytes.Buffer, contentType string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestApplyToJob_PDFUploadAccepted(t *testing.T) {
	portal := newFakePortal(t)
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	body, contentType := multipartResume(t, "application/pdf")
	rec := doMultipart(t, s, "/api/jobs/j1/apply", body, contentType, cookie)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, portal.applyCount())
}

func TestApplyToJob_NonPDFRejectedBeforePortal(t *testing.T) {
	portal := newFakePortal(t)
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	body, contentType := multipartResume(t, "text/plain")
	rec := doMultipart(t, s, "/api/jobs/j1/apply", body, contentType, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RESUME_TYPE_INVALID", decodeBody(t, rec)["error"])
	assert.Zero(t, portal.applyCount(), "invalid resume type must not reach the portal")
}

func TestApplyToJob_SavedResumeURL(t *testing.T) {
	portal := newFakePortal(t)
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	rec := doJSON(t, s, http.MethodPost, "/api/jobs/j1/apply", map[string]string{
		"resumeUrl": "https://cdn.example.com/r1.pdf",
	}, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, portal.applyCount())
}

func TestApplyToJob_SavedResumeRequiresURL(t *testing.T) {
	portal := newFakePortal(t)
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	rec := doJSON(t, s, http.MethodPost, "/api/jobs/j1/apply", map[string]string{}, cookie)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, portal.applyCount())
}

func TestJobApplicants_SeekerForbidden(t *testing.T) {
	portal := newFakePortal(t)
	s := newTestServer(t, portal)
	cookie := loginAs(t, s, "user")

	rec := doJSON(t, s, http.MethodGet, "/api/jobs/j1/applicants", nil, cookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
