package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikhailRaia/link-shortener/internal/config"
	"github.com/MikhailRaia/link-shortener/internal/model"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	dir := t.TempDir()
	staticDir := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(staticDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>shortener</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "style.css"), []byte("body{}"), 0644))

	dataPath := filepath.Join(dir, "data", "links.json")

	cfg := &config.Config{
		ServerAddress:   ":0",
		FileStoragePath: dataPath,
		StaticDir:       staticDir,
	}

	app, err := NewApp(cfg)
	require.NoError(t, err)

	server := httptest.NewServer(app.handler)
	t.Cleanup(server.Close)

	return server, dataPath
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func shorten(t *testing.T, serverURL string, req model.ShortenRequest) *http.Response {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(serverURL+"/shorten", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func readLinksFile(t *testing.T, path string) model.LinkMapping {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	links := make(model.LinkMapping)
	require.NoError(t, json.Unmarshal(data, &links))
	return links
}

func TestApp_Integration(t *testing.T) {
	server, dataPath := newTestServer(t)
	client := noRedirectClient()

	_, err := os.Stat(dataPath)
	require.True(t, os.IsNotExist(err), "links file must not exist before the first request")

	resp, err := client.Get(server.URL + "/links")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{}`, string(body))

	data, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	resp = shorten(t, server.URL, model.ShortenRequest{URL: "https://example.com/long"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var generated model.ShortenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&generated))
	assert.True(t, generated.Success)
	assert.Regexp(t, `^[0-9a-f]{8}$`, generated.ShortCode)

	resp, err = client.Get(server.URL + "/" + generated.ShortCode)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://example.com/long", resp.Header.Get("Location"))

	resp = shorten(t, server.URL, model.ShortenRequest{URL: "https://example.com/spaced", ShortCode: "my code"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var custom model.ShortenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&custom))
	assert.Equal(t, "my_code", custom.ShortCode)

	before, err := os.ReadFile(dataPath)
	require.NoError(t, err)

	resp = shorten(t, server.URL, model.ShortenRequest{URL: "https://other.example.com", ShortCode: "my_code"})
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Short code already exists. Please choose another.", strings.TrimSpace(string(body)))

	after, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "duplicate must leave the file untouched")

	resp, err = client.Get(server.URL + "/links")
	require.NoError(t, err)
	var links model.LinkMapping
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&links))
	resp.Body.Close()

	expected := model.LinkMapping{
		generated.ShortCode: "https://example.com/long",
		"my_code":           "https://example.com/spaced",
	}
	assert.Equal(t, expected, links)
	assert.Equal(t, expected, readLinksFile(t, dataPath))

	resp, err = client.Get(server.URL + "/nonexistent-code")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApp_MissingFileCreatedOnShorten(t *testing.T) {
	server, dataPath := newTestServer(t)

	resp := shorten(t, server.URL, model.ShortenRequest{URL: "https://example.com", ShortCode: "first"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, model.LinkMapping{"first": "https://example.com"}, readLinksFile(t, dataPath))
}

func TestApp_StaticAndUnknownRoutes(t *testing.T) {
	server, _ := newTestServer(t)

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantType    string
		wantContent string
	}{
		{name: "Index", method: http.MethodGet, path: "/", wantStatus: http.StatusOK, wantType: "text/html", wantContent: "shortener"},
		{name: "Stylesheet", method: http.MethodGet, path: "/style.css", wantStatus: http.StatusOK, wantType: "text/css", wantContent: "body{}"},
		{name: "Wrong method on shorten", method: http.MethodGet, path: "/shorten", wantStatus: http.StatusNotFound},
		{name: "Wrong method on root", method: http.MethodPut, path: "/", wantStatus: http.StatusNotFound},
		{name: "Nested path", method: http.MethodGet, path: "/a/b", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, server.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := noRedirectClient().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantType != "" {
				assert.Contains(t, resp.Header.Get("Content-Type"), tt.wantType)
			}
			if tt.wantContent != "" {
				assert.Contains(t, string(body), tt.wantContent)
			}
		})
	}
}

func TestApp_InMemoryWhenNoFile(t *testing.T) {
	app, err := NewApp(&config.Config{ServerAddress: ":0", StaticDir: t.TempDir()})
	require.NoError(t, err)
	assert.Nil(t, app.grpcServer)

	server := httptest.NewServer(app.handler)
	defer server.Close()

	resp := shorten(t, server.URL, model.ShortenRequest{URL: "https://example.com", ShortCode: "mem"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(&config.Config{
		ServerAddress: "127.0.0.1:0",
		GRPCAddress:   "127.0.0.1:0",
		StaticDir:     t.TempDir(),
	})
	require.NoError(t, err)
	require.NotNil(t, app.grpcServer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
