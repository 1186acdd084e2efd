package hackernews

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/CrestNiraj12/terminalhn/domain"
)

type handlerRoundTripper struct {
	h http.Handler
}

func (rt handlerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := newResponseRecorder()
	rt.h.ServeHTTP(rec, req)
	return rec.response(req), nil
}

type responseRecorder struct {
	header http.Header
	body   strings.Builder
	code   int
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{header: make(http.Header), code: http.StatusOK}
}

func (r *responseRecorder) Header() http.Header         { return r.header }
func (r *responseRecorder) Write(p []byte) (int, error) { return r.body.Write(p) }
func (r *responseRecorder) WriteHeader(statusCode int)  { r.code = statusCode }

func (r *responseRecorder) response(req *http.Request) *http.Response {
	return &http.Response{
		StatusCode: r.code,
		Header:     r.header.Clone(),
		Body:       io.NopCloser(strings.NewReader(r.body.String())),
		Request:    req,
	}
}

func newTestClient(h http.Handler) *Client {
	return &Client{
		baseURL:   "http://example.test",
		userAgent: "terminalhn-test",
		http:      &http.Client{Transport: handlerRoundTripper{h: h}},
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	_, _ = w.Write(data)
}

func TestService_ListIDs_RequestShape(t *testing.T) {
	var gotPath, gotUA string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		writeJSON(t, w, []int{3, 1, 2})
	})

	svc := NewService(newTestClient(h), "", 4)
	ids, err := svc.ListIDs(context.Background(), domain.KindBest)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if gotPath != "/v0/beststories.json" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotUA != "terminalhn-test" {
		t.Fatalf("unexpected user agent: %q", gotUA)
	}
	if len(ids) != 3 || ids[0] != 3 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestService_ListIDs_KindPaths(t *testing.T) {
	for _, kind := range domain.StoryKinds {
		var gotPath string
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte("[]"))
		})
		svc := NewService(newTestClient(h), "", 1)
		if _, err := svc.ListIDs(context.Background(), kind); err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		want := fmt.Sprintf("/v0/%sstories.json", kind)
		if gotPath != want {
			t.Fatalf("kind %s: expected %s, got %s", kind, want, gotPath)
		}
	}
}

func TestService_FetchItem_MapsFields(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/item/8863.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, map[string]any{
			"id":          8863,
			"type":        "story",
			"by":          "dhouston",
			"time":        1175714200,
			"title":       "My YC app: Dropbox &amp; friends",
			"url":         "http://www.getdropbox.com/u/2/screencast.html",
			"score":       111,
			"descendants": 71,
			"kids":        []int{8952, 9224},
		})
	})

	svc := NewService(newTestClient(h), "", 1)
	it, err := svc.FetchItem(context.Background(), 8863)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if it.Author != "dhouston" || it.Score != 111 || it.Title != "My YC app: Dropbox & friends" {
		t.Fatalf("unexpected mapping: %+v", it)
	}
	if it.Descendants == nil || *it.Descendants != 71 {
		t.Fatalf("expected descendants 71, got %v", it.Descendants)
	}
	if !it.Time.Equal(time.Unix(1175714200, 0)) {
		t.Fatalf("unexpected time %v", it.Time)
	}
	if len(it.Kids) != 2 || it.Kids[1] != 9224 {
		t.Fatalf("unexpected kids %v", it.Kids)
	}
}

func TestService_FetchItem_NullIsNotFound(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	})
	svc := NewService(newTestClient(h), "", 1)
	_, err := svc.FetchItem(context.Background(), 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_FetchItems_PreservesOrderWithPartialFailure(t *testing.T) {
	var inflight, peak atomic.Int32
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inflight.Add(1)
		defer inflight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		var id int
		_, _ = fmt.Sscanf(r.URL.Path, "/v0/item/%d.json", &id)
		if id == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(t, w, map[string]any{"id": id, "type": "comment", "by": "u", "text": "hi"})
	})

	svc := NewService(newTestClient(h), "", 2)
	ids := []int{5, 2, 9, 1}
	results := svc.FetchItems(context.Background(), ids)
	if len(results) != len(ids) {
		t.Fatalf("expected %d results, got %d", len(ids), len(results))
	}
	for i, res := range results {
		if res.ID != ids[i] {
			t.Fatalf("slot %d: expected id %d, got %d", i, ids[i], res.ID)
		}
		if ids[i] == 2 {
			if !errors.Is(res.Err, domain.ErrFetch) {
				t.Fatalf("expected fetch error for id 2, got %v", res.Err)
			}
			continue
		}
		if res.Err != nil || res.Item.ID != ids[i] {
			t.Fatalf("slot %d: unexpected %+v", i, res)
		}
	}
	if peak.Load() > 2 {
		t.Fatalf("concurrency limit exceeded: %d", peak.Load())
	}
}

func TestService_ItemURL_FallsBackToDiscussion(t *testing.T) {
	svc := NewService(newTestClient(http.NotFoundHandler()), "https://news.example", 1)
	if got := svc.ItemURL(domain.Item{ID: 7, URL: "https://a.test/x"}); got != "https://a.test/x" {
		t.Fatalf("expected external url, got %q", got)
	}
	if got := svc.ItemURL(domain.Item{ID: 7}); got != "https://news.example/item?id=7" {
		t.Fatalf("expected discussion url, got %q", got)
	}
}

func TestClient_Get_ErrorContainsPathAndStatus(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err := newTestClient(h).Get(context.Background(), "/v0/topstories.json")
	if !errors.Is(err, domain.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if !strings.Contains(err.Error(), "/v0/topstories.json") || !strings.Contains(err.Error(), "503") {
		t.Fatalf("error should name path and status: %v", err)
	}
}
