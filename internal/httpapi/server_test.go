package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ifs "imgfs/internal/fs"
	"imgfs/internal/httpapi"
	"imgfs/internal/imgfs"
)

type fakeCodec struct{}

func (fakeCodec) Dimensions(data []byte) (uint32, uint32, error) { return uint32(len(data)), uint32(len(data)), nil }
func (fakeCodec) Thumbnail(data []byte, maxEdge uint16) ([]byte, error) {
	return []byte("thumb-bytes"), nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "store.imgfs")

	require.NoError(t, imgfs.Create(path, imgfs.Config{
		MaxFiles: 8,
		ThumbRes: [2]uint16{64, 64},
		SmallRes: [2]uint16{256, 256},
	}))

	store, err := imgfs.Open(ifs.NewReal(), fakeCodec{}, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))

	srv := httpapi.New(store, dir, nil)
	return httptest.NewServer(srv)
}

func TestHandleListEmpty(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/imgfs/list")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct{ Images []string }
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Empty(t, body.Images)
}

func TestHandleInsertThenReadAndDelete(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// Inspect the 302 replies themselves instead of following them.
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}

	insertURL := ts.URL + "/imgfs/insert?" + url.Values{"name": {"A"}}.Encode()
	resp, err := client.Post(insertURL, "image/jpeg", strings.NewReader("jpeg bytes for A"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/index.html", resp.Header.Get("Location"))

	readURL := ts.URL + "/imgfs/read?" + url.Values{"res": {"original"}, "img_id": {"A"}}.Encode()
	resp2, err := http.Get(readURL)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	require.Equal(t, "image/jpeg", resp2.Header.Get("Content-Type"))

	deleteURL := ts.URL + "/imgfs/delete?" + url.Values{"img_id": {"A"}}.Encode()
	resp3, err := client.Get(deleteURL)
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusFound, resp3.StatusCode)
}

func TestHandleReadMissingReturns500(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	readURL := ts.URL + "/imgfs/read?" + url.Values{"res": {"original"}, "img_id": {"missing"}}.Encode()
	resp, err := http.Get(readURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandleUnmatchedRouteReturns500(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/nowhere")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
