// http/handlers_test.go
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ViniZap4/groupboard/domain"
	"github.com/ViniZap4/groupboard/filesystem"
	"github.com/ViniZap4/groupboard/render"
	"github.com/heptiolabs/healthcheck"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupsJSON = `[
	{"name": "Gophers", "description": "A *friendly* group", "url": "http://x", "tags": ["go", "systems"]},
	{"name": "Rustaceans", "description": "Fearless concurrency", "url": "http://y", "tags": ["rust"]}
]`

const indexHTML = `<!DOCTYPE html><table>{{groups}}</table>`

type testApp struct {
	dir    string
	health healthcheck.Handler
	server *Server
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "groups.json"), []byte(groupsJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(indexHTML), 0644))

	renderer := render.NewRenderer(
		filesystem.GroupFile{Path: filepath.Join(dir, "groups.json")},
		filepath.Join(dir, "index.html"),
	)
	return &testApp{
		dir:    dir,
		health: healthcheck.NewHandler(),
		server: NewServer(renderer, zerolog.Nop()),
	}
}

func (a *testApp) get(t *testing.T, target string) (*http.Response, string) {
	t.Helper()
	app := NewApp(a.server, a.health)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHandleIndex(t *testing.T) {
	resp, body := newTestApp(t).get(t, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<!DOCTYPE html><table><tr>")
	assert.Contains(t, body, "Gophers")
	assert.Contains(t, body, "Rustaceans")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestHandleSearch(t *testing.T) {
	resp, body := newTestApp(t).get(t, "/search?term=go")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<ul><li>go</li><li>systems</li></ul>")
	assert.Contains(t, body, "<b>friendly</b>")
	assert.Contains(t, body, "<mark>Go</mark>phers")
	assert.NotContains(t, body, "Rustaceans")
}

func TestHandleSearch_TagToken(t *testing.T) {
	_, body := newTestApp(t).get(t, "/search?term=tag%3Arust")

	assert.Contains(t, body, "Rustaceans")
	assert.NotContains(t, body, "Gophers")
}

func TestHandleSearch_MissingTermListsEverything(t *testing.T) {
	_, body := newTestApp(t).get(t, "/search")

	assert.Contains(t, body, "Gophers")
	assert.Contains(t, body, "Rustaceans")
	assert.NotContains(t, body, "<mark>")
}

func TestHandleSearch_NoResults(t *testing.T) {
	resp, body := newTestApp(t).get(t, "/search?term=haskell")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `<!DOCTYPE html><table><tr><td colspan="4">No results found</td></tr></table>`, body)
}

func TestHandle_DataFileChangesArePickedUp(t *testing.T) {
	a := newTestApp(t)
	_, body := a.get(t, "/")
	require.NotContains(t, body, "Pythonistas")

	require.NoError(t, os.WriteFile(filepath.Join(a.dir, "groups.json"),
		[]byte(`[{"name":"Pythonistas","description":"","url":"","tags":[]}]`), 0644))

	_, body = a.get(t, "/")
	assert.Contains(t, body, "Pythonistas")
}

func TestHandle_Failures(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(t *testing.T, dir string)
	}{
		{"missing data file", func(t *testing.T, dir string) {
			require.NoError(t, os.Remove(filepath.Join(dir, "groups.json")))
		}},
		{"malformed data file", func(t *testing.T, dir string) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "groups.json"), []byte(`[{"name":"x"}]`), 0644))
		}},
		{"missing template", func(t *testing.T, dir string) {
			require.NoError(t, os.Remove(filepath.Join(dir, "index.html")))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			tt.corrupt(t, a.dir)

			resp, body := a.get(t, "/search?term=go")
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, "Internal Server Error", body)
		})
	}
}

type panickingRenderer struct{}

func (panickingRenderer) Render(context.Context, string) (render.Page, error) {
	panic("boom")
}

func TestHandle_PanicIsServerError(t *testing.T) {
	a := &testApp{health: healthcheck.NewHandler(), server: NewServer(panickingRenderer{}, zerolog.Nop())}

	resp, _ := a.get(t, "/")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

type failingRenderer struct{ err error }

func (r failingRenderer) Render(context.Context, string) (render.Page, error) {
	return render.Page{}, r.err
}

func TestHandle_ErrorBodyHidesCause(t *testing.T) {
	a := &testApp{
		health: healthcheck.NewHandler(),
		server: NewServer(failingRenderer{err: errors.Join(domain.ErrIO, errors.New("/secret/path"))}, zerolog.Nop()),
	}

	_, body := a.get(t, "/")
	assert.NotContains(t, body, "secret")
}

func TestUnknownRoute(t *testing.T) {
	resp, _ := newTestApp(t).get(t, "/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	a := newTestApp(t)
	a.health.AddReadinessCheck("template", func() error {
		return filesystem.Readable(filepath.Join(a.dir, "index.html"))
	})

	resp, _ := a.get(t, "/live")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = a.get(t, "/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, os.Remove(filepath.Join(a.dir, "index.html")))
	resp, _ = a.get(t, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	a.get(t, "/")
	resp, body := a.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "groupboard_page_renders_total")
}
