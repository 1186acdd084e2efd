package hackernews

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/CrestNiraj12/terminalhn/app"
	"github.com/CrestNiraj12/terminalhn/domain"
)

const DefaultConcurrency = 16

// Service implements app.ItemService using the Hacker News Firebase API.
type Service struct {
	client      *Client
	siteURL     string
	concurrency int
}

var _ app.ItemService = (*Service)(nil)

// NewService creates an ItemService. siteURL is the web front end used for
// discussion links; concurrency bounds parallel item requests per batch.
func NewService(client *Client, siteURL string, concurrency int) *Service {
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	if !strings.HasSuffix(siteURL, "/") {
		siteURL += "/"
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Service{
		client:      client,
		siteURL:     siteURL,
		concurrency: concurrency,
	}
}

// hnItem is the subset of the API's item entity we care about.
type hnItem struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Text        string `json:"text"`
	Score       int    `json:"score"`
	Descendants *int   `json:"descendants"`
	Kids        []int  `json:"kids"`
	Deleted     bool   `json:"deleted"`
	Dead        bool   `json:"dead"`
}

func (s *Service) ListIDs(ctx context.Context, kind domain.StoryKind) ([]int, error) {
	path := fmt.Sprintf("/v0/%sstories.json", kind)

	data, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("%w: parsing %s stories: %v", domain.ErrFetch, kind, err)
	}
	return ids, nil
}

// FetchItem fetches a single item. The API answers "null" for unknown IDs,
// which maps to domain.ErrNotFound.
func (s *Service) FetchItem(ctx context.Context, id int) (domain.Item, error) {
	data, err := s.client.Get(ctx, fmt.Sprintf("/v0/item/%d.json", id))
	if err != nil {
		return domain.Item{}, fmt.Errorf("fetching item %d: %w", id, err)
	}

	var raw *hnItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Item{}, fmt.Errorf("%w: parsing item %d: %v", domain.ErrFetch, id, err)
	}
	if raw == nil {
		return domain.Item{}, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return mapItem(*raw), nil
}

func (s *Service) FetchItems(ctx context.Context, ids []int) []app.ItemResult {
	results := make([]app.ItemResult, len(ids))
	if len(ids) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			item, err := s.FetchItem(gctx, id)
			results[i] = app.ItemResult{ID: id, Item: item, Err: err}
			return nil // Per-item failures live in results.
		})
	}
	_ = g.Wait()
	return results
}

func (s *Service) ItemURL(item domain.Item) string {
	if u := strings.TrimSpace(item.URL); u != "" {
		return u
	}
	return fmt.Sprintf("%sitem?id=%d", s.siteURL, item.ID)
}

func mapItem(raw hnItem) domain.Item {
	var created time.Time
	if raw.Time > 0 {
		created = time.Unix(raw.Time, 0)
	}
	return domain.Item{
		ID:          raw.ID,
		Type:        raw.Type,
		Author:      sanitizeForTerminal(raw.By),
		Time:        created,
		Title:       sanitizeForTerminal(html.UnescapeString(raw.Title)),
		URL:         raw.URL,
		Text:        stripHTML(raw.Text),
		Score:       raw.Score,
		Descendants: raw.Descendants,
		Kids:        raw.Kids,
		Deleted:     raw.Deleted,
		Dead:        raw.Dead,
	}
}
