package redirecthandlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aseptimu/link-shortener/internal/app/config"
	"github.com/aseptimu/link-shortener/internal/app/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testCfg = &config.ConfigType{
	ListPassword:   "list",
	SubmitPassword: "submit",
	DeletePassword: "delete",
	IDLength:       2,
}

// === mockService реализует все интерфейсы сервиса ===
type mockService struct {
	calls      int
	gotURL     string
	gotID      string
	err        error
	entries    map[string]string
	sorted     []service.Entry
	lastDelete string
}

func (m *mockService) ShortenURL(_ context.Context, rawURL, customID string) (service.Entry, error) {
	m.calls++
	m.gotURL, m.gotID = rawURL, customID
	if m.err != nil {
		return service.Entry{}, m.err
	}
	id := customID
	if id == "" {
		id = "zz"
	}
	return service.Entry{ID: strings.ToLower(id), URL: service.EnsureScheme(rawURL)}, nil
}

func (m *mockService) MoveURL(_ context.Context, rawID, rawURL string) (service.Entry, error) {
	m.calls++
	m.gotURL, m.gotID = rawURL, rawID
	if m.err != nil {
		return service.Entry{}, m.err
	}
	return service.Entry{ID: rawID, URL: service.EnsureScheme(rawURL)}, nil
}

func (m *mockService) GetOriginalURL(_ context.Context, rawID string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	id, _ := service.NormalizeID(strings.TrimPrefix(rawID, "/r/"))
	if url, ok := m.entries[id]; ok {
		return url, nil
	}
	return "", service.ErrURLNotFound
}

func (m *mockService) ListURLs(_ context.Context) (map[string]string, error) {
	m.calls++
	return m.entries, m.err
}

func (m *mockService) SortedURLs(_ context.Context) ([]service.Entry, error) {
	m.calls++
	return m.sorted, m.err
}

func (m *mockService) DeleteURL(_ context.Context, rawID string) error {
	m.calls++
	m.lastDelete = rawID
	return m.err
}

func newTestRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()

	getHandler := NewGetURLHandler(testCfg, svc, logger)
	shortenHandler := NewShortenHandler(testCfg, svc, logger)
	deleteHandler := NewDeleteURLHandler(testCfg, svc, logger)

	r := gin.New()
	r.SetHTMLTemplate(Templates())
	r.GET("/", getHandler.Index)
	r.GET("/list", getHandler.ListURLs)
	r.GET("/weblist", getHandler.WebList)
	r.POST("/shorten", shortenHandler.URLCreator)
	r.POST("/move", shortenHandler.URLMover)
	r.GET("/r/*id", getHandler.GetURL)
	r.DELETE("/r/*id", deleteHandler.DeleteURL)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

// === Tests for ShortenHandler ===
func TestURLCreator(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		code     int
		respBody string
		called   bool
	}{
		{
			name:     "custom id",
			body:     `{"url":"example.com","password":"submit","id":"ABC"}`,
			code:     http.StatusOK,
			respBody: `{"id":"abc","url":"https://example.com"}`,
			called:   true,
		},
		{
			name:     "generated id",
			body:     `{"url":"a.com","password":"submit"}`,
			code:     http.StatusOK,
			respBody: `{"id":"zz","url":"https://a.com"}`,
			called:   true,
		},
		{
			name:     "non-string id is ignored",
			body:     `{"url":"a.com","password":"submit","id":42}`,
			code:     http.StatusOK,
			respBody: `{"id":"zz","url":"https://a.com"}`,
			called:   true,
		},
		{name: "wrong password", body: `{"url":"a.com","password":"SUBMIT"}`, code: http.StatusBadRequest},
		{name: "missing password", body: `{"url":"a.com"}`, code: http.StatusBadRequest},
		{name: "missing url", body: `{"password":"submit"}`, code: http.StatusBadRequest},
		{name: "empty url", body: `{"url":"","password":"submit"}`, code: http.StatusBadRequest},
		{name: "invalid json", body: `{"url":`, code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			w := serve(newTestRouter(svc), http.MethodPost, "/shorten", tt.body)

			assert.Equal(t, tt.code, w.Code)
			if tt.respBody != "" {
				assert.JSONEq(t, tt.respBody, w.Body.String())
			} else {
				assert.Empty(t, w.Body.String())
			}
			assert.Equal(t, tt.called, svc.calls > 0)
		})
	}
}

func TestURLCreator_ServiceErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
		body string
	}{
		{err: service.ErrIDInUse, code: http.StatusBadRequest, body: `{"error":"ID in use"}`},
		{err: service.ErrIDSpaceExhausted, code: http.StatusServiceUnavailable, body: `{"error":"ID space exhausted"}`},
		{err: errors.New("decode db.json: unexpected EOF"), code: http.StatusInternalServerError, body: `{"error":"internal error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{err: tt.err}
			w := serve(newTestRouter(svc), http.MethodPost, "/shorten", `{"url":"a.com","password":"submit","id":"x"}`)
			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestURLMover(t *testing.T) {
	svc := &mockService{}
	r := newTestRouter(svc)

	w := serve(r, http.MethodPost, "/move", `{"url":"new.com","password":"submit","id":"abc"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"abc","url":"https://new.com"}`, w.Body.String())
	assert.Equal(t, "abc", svc.gotID)

	svc = &mockService{err: service.ErrIDNotExist}
	w = serve(newTestRouter(svc), http.MethodPost, "/move", `{"url":"new.com","password":"submit","id":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"ID does not exist"}`, w.Body.String())

	svc = &mockService{}
	w = serve(newTestRouter(svc), http.MethodPost, "/move", `{"url":"new.com","password":"wrong","id":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

// === Tests for GetURLHandler ===
func TestGetURL(t *testing.T) {
	svc := &mockService{entries: map[string]string{"abc": "https://example.com"}}
	r := newTestRouter(svc)

	w := serve(r, http.MethodGet, "/r/ABC", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Location"))

	w = serve(r, http.MethodGet, "/r/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetURL_StoreError(t *testing.T) {
	svc := &mockService{err: errors.New("corrupt store")}
	w := serve(newTestRouter(svc), http.MethodGet, "/r/abc", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestListURLs(t *testing.T) {
	svc := &mockService{entries: map[string]string{"a": "https://a.com", "b": "https://b.com"}}
	w := serve(newTestRouter(svc), http.MethodGet, "/list", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"a":"https://a.com","b":"https://b.com"}`, w.Body.String())
}

func TestWebList(t *testing.T) {
	svc := &mockService{sorted: []service.Entry{
		{ID: "a", URL: "https://a.com"},
		{ID: "b", URL: "https://b.com/?q=<x>"},
	}}
	w := serve(newTestRouter(svc), http.MethodGet, "/weblist", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, `<code class="list">`)
	assert.Contains(t, body, `<a href="a"><span class="key">a</span></a>: <a href="https://a.com"><span class="value">https://a.com</span></a>`)
	assert.Contains(t, body, `<span class="value">https://b.com/?q=&lt;x&gt;</span>`)
	assert.Less(t, strings.Index(body, `class="key">a<`), strings.Index(body, `class="key">b<`))
}

func TestIndex(t *testing.T) {
	w := serve(newTestRouter(&mockService{}), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Link Shortener</h1>")
	assert.Contains(t, w.Body.String(), "<code>/weblist?password=</code>")
}

// === Tests for DeleteURLHandler ===
func TestDeleteURL(t *testing.T) {
	svc := &mockService{}
	w := serve(newTestRouter(svc), http.MethodDelete, "/r/abc?password=delete", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "/r/abc", svc.lastDelete)
}

func TestDeleteURL_Unauthorized(t *testing.T) {
	svc := &mockService{}
	w := serve(newTestRouter(svc), http.MethodDelete, "/r/abc?password=list", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.calls)
}

func TestDeleteURL_NotFound(t *testing.T) {
	svc := &mockService{err: service.ErrURLNotFound}
	w := serve(newTestRouter(svc), http.MethodDelete, "/r/abc?password=delete", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}
