package geode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/common"
	"github.com/pkg/errors"
	"gotest.tools/v3/assert"
)

func newTestClient(t *testing.T, status int, body string) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return NewClient(server.URL+"/v1/loader/versions/latest", common.GeodeReleaseURLFormat, 5*time.Second)
}

func TestLatestDownloadURL(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `{"error":"","payload":{"tag":"v1.2.3"}}`)

	url, err := client.LatestDownloadURL(context.Background())
	assert.NilError(t, err)
	assert.Equal(t, url, "https://github.com/geode-sdk/geode/releases/download/v1.2.3/geode-v1.2.3-win.zip")
}

func TestLatestTagErrors(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{"api error", http.StatusOK, `{"error":"rate limited","payload":null}`, ErrAPI},
		{"missing payload", http.StatusOK, `{"error":""}`, ErrMalformedResponse},
		{"empty tag", http.StatusOK, `{"error":"","payload":{"tag":""}}`, ErrMalformedResponse},
		{"not json", http.StatusOK, `<html>`, ErrMalformedResponse},
		{"bad status", http.StatusBadGateway, `{}`, ErrUnexpectedStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, tc.status, tc.body)

			_, err := client.LatestTag(context.Background())
			assert.Assert(t, errors.Is(err, tc.expected), "got %v", err)
		})
	}
}

func TestLatestTagStatusCode(t *testing.T) {
	client := newTestClient(t, http.StatusServiceUnavailable, ``)

	_, err := client.LatestTag(context.Background())
	assert.ErrorContains(t, err, "503")
}

func TestLatestTagTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient(server.URL, common.GeodeReleaseURLFormat, time.Second)

	_, err := client.LatestTag(context.Background())
	assert.ErrorContains(t, err, server.URL)
	assert.Assert(t, !errors.Is(err, ErrUnexpectedStatus))
}

func TestDownloadURL(t *testing.T) {
	client := NewClient(common.GeodeLoaderAPI, common.GeodeReleaseURLFormat, time.Second)
	assert.Equal(t, client.DownloadURL("v4.0.0-beta.1"), "https://github.com/geode-sdk/geode/releases/download/v4.0.0-beta.1/geode-v4.0.0-beta.1-win.zip")
}
