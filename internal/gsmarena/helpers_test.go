package gsmarena

import (
	"bytes"
	"embed"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"strings"
	"sync"
	"testing"

	"gsmarena-backend/internal/components/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/*.html
var fixtures embed.FS

func readFixture(t testing.TB, name string) []byte {
	contents, err := fixtures.ReadFile(path.Join("testdata", name))
	require.NoError(t, err)
	return contents
}

func parseFixture(t testing.TB, name string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(readFixture(t, name)))
	require.NoError(t, err)
	return doc
}

func parseHtml(t testing.TB, contents string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	require.NoError(t, err)
	return doc
}

type report struct {
	level  string
	id     string
	params []any
}

// recordingAPI is a telemetry.API that keeps every report for assertions.
type recordingAPI struct {
	mutex   sync.Mutex
	reports []report
}

func (r *recordingAPI) record(level, id string, params []any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, report{level: level, id: id, params: params})
}

func (r *recordingAPI) ReportBroken(id string, params ...any) {
	r.record("broken", id, params)
}

func (r *recordingAPI) ReportWarning(id string, params ...any) {
	r.record("warning", id, params)
}

func (r *recordingAPI) ReportDebug(msg string, params ...any) {
	r.record("debug", msg, params)
}

func (r *recordingAPI) ReportCount(id string, count int64) {
	r.record("count", id, []any{count})
}

func (r *recordingAPI) find(level, id string) []report {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var out []report
	for _, rep := range r.reports {
		if rep.level == level && rep.id == id {
			out = append(out, rep)
		}
	}
	return out
}

var _ telemetry.API = (*recordingAPI)(nil)

// upstream is a fake of the site that serves fixtures by path and 404s
// everything else. Requested paths are recorded.
type upstream struct {
	*httptest.Server

	mutex     sync.Mutex
	requested []string
}

func newUpstream(t testing.TB, routes map[string]string) *upstream {
	u := &upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mutex.Lock()
		u.requested = append(u.requested, r.URL.Path)
		u.mutex.Unlock()

		name, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("content-type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(readFixture(t, name))
	}))
	t.Cleanup(u.Close)
	return u
}

func (u *upstream) paths() []string {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	return append([]string(nil), u.requested...)
}

func (u *upstream) baseUrl(t testing.TB) *url.URL {
	base, err := url.Parse(u.URL + "/")
	require.NoError(t, err)
	return base
}

func newTestScraper(t testing.TB, u *upstream) (Scraper, *recordingAPI) {
	tel := &recordingAPI{}
	client, err := NewClient(ClientOptions{BaseUrl: u.URL + "/"}, tel)
	require.NoError(t, err)
	return NewScraper(client, client.BaseUrl(), WithCustomTelemetryAPI(tel)), tel
}
