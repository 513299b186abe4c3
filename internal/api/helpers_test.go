package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ftfltech/careers-api/internal/api"
	"github.com/ftfltech/careers-api/internal/mocks"
	"github.com/ftfltech/careers-api/internal/service"
	"github.com/stretchr/testify/require"
)

// testEnv wires the real services over in-memory stores behind the real router.
type testEnv struct {
	router      http.Handler
	jobs        *mocks.MockJobStore
	contacts    *mocks.MockContactStore
	orders      *mocks.MockOrderStore
	subscribers *mocks.MockSubscriberStore
	uploader    *mocks.MockUploader
	mailer      *mocks.MockMailer
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		jobs:        mocks.NewMockJobStore(),
		contacts:    mocks.NewMockContactStore(),
		orders:      &mocks.MockOrderStore{},
		subscribers: &mocks.MockSubscriberStore{},
		uploader:    &mocks.MockUploader{},
		mailer:      &mocks.MockMailer{},
	}
	log := testLogger()

	jobService, err := service.NewJobService(env.jobs, env.uploader, nil, log)
	require.NoError(t, err)
	contactService, err := service.NewContactService(env.contacts, env.orders, service.OrderDefaults{
		PackageID: "default-package",
		UserID:    "default-user",
	}, log)
	require.NoError(t, err)
	newsletterService, err := service.NewNewsletterService(env.subscribers, env.mailer, log)
	require.NoError(t, err)

	env.router = api.NewRouter(api.Handlers{
		Jobs:       api.NewJobHandler(jobService, log),
		Contacts:   api.NewContactHandler(contactService, log),
		Newsletter: api.NewNewsletterHandler(newsletterService, log),
	}, nil, log)
	return env
}

// doJSON sends body (marshalled unless it is already a string) and returns the recorder.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// doMultipart posts fields and, when resume is non-nil, a resume file.
func (e *testEnv) doMultipart(t *testing.T, path string, fields map[string]string, resume []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if resume != nil {
		part, err := mw.CreateFormFile("resume", "cv.pdf")
		require.NoError(t, err)
		_, err = part.Write(resume)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doURLEncoded(t *testing.T, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

// errorBody decodes the standard error envelope.
func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	require.Equal(t, false, body["success"], "error envelope must carry success=false")
	return body
}
