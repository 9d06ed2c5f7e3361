package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecskill/rtx-cli/internal/services/session"
)

const (
	testServiceToken = "svc_test"
	testSessionToken = "tok_test"
)

// authedSession returns a session store holding a token.
func authedSession(t *testing.T) *session.Service {
	t.Helper()
	sess := session.NewServiceWithPath(filepath.Join(t.TempDir(), "credential.json"))
	require.NoError(t, sess.Set(testSessionToken))
	return sess
}

// anonSession returns a resolved session store with no token.
func anonSession(t *testing.T) *session.Service {
	t.Helper()
	sess := session.NewServiceWithPath(filepath.Join(t.TempDir(), "credential.json"))
	sess.Load()
	return sess
}

func newTestClient(sess session.ServiceInterface, baseURL string, httpClient HTTPClientInterface) *Client {
	return &Client{
		BaseURL:      baseURL,
		ServiceToken: testServiceToken,
		Session:      sess,
		HTTPClient:   httpClient,
	}
}

func TestPrepareRequestHeaders(t *testing.T) {
	t.Parallel()
	client := newTestClient(authedSession(t), "http://example.test", http.DefaultClient)

	req, err := client.prepareRequest(context.Background(), http.MethodPost, "/investment",
		map[string]string{"assetSymbol": "PETR4"})
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/investment", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer "+testSessionToken, req.Header.Get("Authorization"))
	assert.Equal(t, testServiceToken, req.Header.Get(headerServiceToken))
	assert.NotNil(t, req.Body)
}

func TestPrepareRequestGetHasNoBody(t *testing.T) {
	t.Parallel()
	client := newTestClient(authedSession(t), "http://example.test", http.DefaultClient)

	req, err := client.prepareRequest(context.Background(), http.MethodGet, "/portfolio",
		map[string]string{"ignored": "yes"})
	require.NoError(t, err)
	assert.Nil(t, req.Body)
}

func TestSendRequestFailsFastWithoutSession(t *testing.T) {
	t.Parallel()
	mockHTTP := &MockHTTPClient{}
	client := newTestClient(anonSession(t), "http://example.test", mockHTTP)

	_, err := client.sendRequest(context.Background(), http.MethodGet, "/portfolio", nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, mockHTTP.Calls, "no network traffic should happen without a session")
}

func TestDoRequestStatusHandling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    string
		wantBody   string
	}{
		{name: "ok", statusCode: http.StatusOK, body: `{"ok":true}`, wantBody: `{"ok":true}`},
		{name: "unauthorized", statusCode: http.StatusUnauthorized, wantErr: "401 Unauthorized."},
		{name: "forbidden", statusCode: http.StatusForbidden, wantErr: "403 Forbidden."},
		{name: "error with message", statusCode: http.StatusBadRequest, body: `{"message":"invalid order"}`,
			wantErr: "invalid order"},
		{name: "error without message", statusCode: http.StatusNotFound, wantErr: "404"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := newTestClient(authedSession(t), srv.URL, srv.Client())
			req, err := client.prepareRequest(context.Background(), http.MethodGet, "/", nil)
			require.NoError(t, err)

			body, err := client.doRequest(req)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantBody, string(body))
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	t.Parallel()
	client := newTestClient(anonSession(t), "http://example.test", http.DefaultClient)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: true},
		{name: "server error", err: eris.New("500 Internal Server Error"), want: true},
		{name: "bad gateway", err: eris.New("502 Bad Gateway"), want: true},
		{name: "unavailable", err: eris.New("503 Service Unavailable"), want: true},
		{name: "too many requests", err: eris.New("429 Too Many Requests"), want: true},
		{name: "not found", err: eris.New("404 Not Found"), want: false},
		{name: "unauthorized", err: eris.New("401 Unauthorized."), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, client.isRetryableError(tc.err))
		})
	}
}

func TestNoRetryOnAuthRejection(t *testing.T) {
	t.Parallel()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(authedSession(t), srv.URL, srv.Client())
	_, err := client.sendRequest(context.Background(), http.MethodGet, "/portfolio", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized.")
	assert.Equal(t, int32(1), requests.Load())
}

func TestRetriesTransientServerErrors(t *testing.T) {
	t.Parallel()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if requests.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := newTestClient(authedSession(t), srv.URL, srv.Client())
	body, err := client.sendRequest(context.Background(), http.MethodGet, "/portfolio", nil)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, int32(3), requests.Load())
}
