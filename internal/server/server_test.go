package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-insightui/internal/metrics"
	"github.com/goliatone/go-insightui/pkg/fetch"
	"github.com/goliatone/go-insightui/pkg/insight"
	"github.com/goliatone/go-insightui/pkg/render"
	"github.com/goliatone/go-insightui/pkg/renderers/jsx"
	"github.com/goliatone/go-insightui/pkg/renderers/text"
	"github.com/goliatone/go-insightui/pkg/schema"
)

const testAddress = "0x1234567890abcdef1234567890abcdef12345678"

type stubFetcher struct {
	payload schema.Payload
	err     error
	got     fetch.Request
}

func (s *stubFetcher) Fetch(_ context.Context, req fetch.Request) (schema.Payload, error) {
	s.got = req
	return s.payload, s.err
}

func newTestServer(t *testing.T, fetcher fetch.Fetcher, opts ...Option) *Server {
	t.Helper()
	svc, err := insight.New(fetcher)
	require.NoError(t, err)

	backends := render.NewRegistry()
	backends.MustRegister(jsx.New())
	backends.MustRegister(text.New())

	srv, err := New(svc, backends, opts...)
	require.NoError(t, err)
	return srv
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNew_Validation(t *testing.T) {
	svc, err := insight.New(&stubFetcher{})
	require.NoError(t, err)

	_, err = New(nil, render.NewRegistry())
	assert.Error(t, err)

	_, err = New(svc, render.NewRegistry())
	assert.Error(t, err)
}

func TestHealthAndInfo(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{}, WithVersion("1.2.3"), WithElementTypes([]string{"box", "text"}))

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(srv, httptest.NewRequest(http.MethodGet, "/info", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"insightui","version":"1.2.3","backends":["jsx","text"],"elements":["box","text"]}`, rec.Body.String())
}

func TestOpenAPI(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "UiPayload")
}

func TestInsight_JSONBody(t *testing.T) {
	stub := &stubFetcher{payload: schema.Payload{
		UI:       []schema.Element{{Type: "heading", Props: schema.Props{"children": "Verified"}}},
		Severity: "critical",
	}}
	srv := newTestServer(t, stub)

	body := `{"address":"` + testAddress + `","origin":"https://dapp.example","chainId":"eip155:1"}`
	rec := serve(srv, httptest.NewRequest(http.MethodPost, "/v1/insight", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, fetch.Request{Address: testAddress, Origin: "https://dapp.example", ChainID: "eip155:1"}, stub.got)

	var result jsx.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "critical", result.Severity)
	assert.Contains(t, rec.Body.String(), `"Verified"`)
}

func TestInsight_QueryAndFormat(t *testing.T) {
	stub := &stubFetcher{payload: schema.Payload{UI: []schema.Element{schema.Text("hello")}}}
	srv := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/insight?format=text&address="+testAddress+"&chain_id=eip155:10&origin=https://o.example", nil)
	rec := serve(srv, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, "hello\n", rec.Body.String())
	assert.Equal(t, "eip155:10", stub.got.ChainID)
}

func TestInsight_FetchFailure(t *testing.T) {
	stub := &stubFetcher{err: &fetch.Error{Reason: "HTTP 503", Status: http.StatusServiceUnavailable}}
	srv := newTestServer(t, stub)

	body := `{"to":"` + testAddress + `","chainId":"eip155:1"}`
	rec := serve(srv, httptest.NewRequest(http.MethodPost, "/v1/insight?format=text", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HTTP 503", rec.Header().Get("X-Insight-Fetch-Error"))
	assert.Contains(t, rec.Body.String(), "[DANGER] Error")
	assert.Contains(t, rec.Body.String(), insight.DefaultFailureMessage)
	assert.NotContains(t, rec.Body.String(), "CRITICAL")
}

func TestInsight_BadRequests(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})

	cases := []struct {
		name string
		url  string
		body string
	}{
		{name: "missing fields", url: "/v1/insight", body: `{"origin":"https://x"}`},
		{name: "bad json", url: "/v1/insight", body: `{`},
		{name: "unknown format", url: "/v1/insight?format=pdf", body: `{"address":"` + testAddress + `","chainId":"eip155:1"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(srv, httptest.NewRequest(http.MethodPost, tc.url, strings.NewReader(tc.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestRender_Preview(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})

	body := `{"ui":[{"type":"heading","props":{"children":"Preview"}},{"type":"iframe"}],"severity":null}`
	rec := serve(srv, httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"content":{"type":"Box","props":{"center":false,"children":[{"type":"Heading","props":{"children":"Preview"},"key":"el-0"}]},"key":null}}`, rec.Body.String())
}

func TestRender_InvalidPayload(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})

	rec := serve(srv, httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader(`{"ui":[{"props":{}}]}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve(srv, httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec = serve(srv, req)
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	rec = serve(srv, req)
	assert.NotEqual(t, "<script>", rec.Header().Get(RequestIDHeader))
}

func TestMetricsRoute(t *testing.T) {
	m := metrics.New()
	srv := newTestServer(t, &stubFetcher{}, WithMetrics(m))

	serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `insightui_http_requests_total{code="200",route="/health"} 1`)
}

func TestListenAndServe_Shutdown(t *testing.T) {
	srv := newTestServer(t, &stubFetcher{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.ListenAndServe(ctx, "127.0.0.1:0", time.Second))
}
