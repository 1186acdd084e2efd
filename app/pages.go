package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CrestNiraj12/terminalhn/domain"
)

const (
	MinPageSize     = 1
	MaxPageSize     = 50
	DefaultPageSize = 20
)

// ClampPageSize bounds n to [MinPageSize, MaxPageSize].
func ClampPageSize(n int) int {
	return min(max(n, MinPageSize), MaxPageSize)
}

// PageIDs returns the slice of ids shown on a 1-based page. Pages past the
// end are empty, not an error.
func PageIDs(ids []int, pageSize, page int) []int {
	pageSize = ClampPageSize(pageSize)
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(ids) {
		return []int{}
	}
	end := min(start+pageSize, len(ids))
	return ids[start:end]
}

// LoadStoriesPage lists a kind and fetches one page of its stories. Items
// that fail individually are dropped; the page only fails when the listing
// fails or every item on a non-empty page failed.
func LoadStoriesPage(ctx context.Context, svc ItemService, kind domain.StoryKind, pageSize, page int) ([]domain.Story, error) {
	ids, err := svc.ListIDs(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("listing %s stories: %w", kind, err)
	}
	pageIDs := PageIDs(ids, pageSize, page)
	if len(pageIDs) == 0 {
		return []domain.Story{}, nil
	}

	results := svc.FetchItems(ctx, pageIDs)
	now := time.Now()
	stories := make([]domain.Story, 0, len(results))
	var firstErr error
	for _, res := range results {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		stories = append(stories, domain.NewStory(res.Item, svc.ItemURL(res.Item), now))
	}
	if len(stories) == 0 && firstErr != nil {
		return nil, fmt.Errorf("fetching %s stories page %d: %w", kind, page, firstErr)
	}
	return stories, nil
}

// LoadComments fetches the comments for ids and builds them as collapsed
// nodes at depth. Failed items are removed from the result; the batch only
// fails when every requested item failed.
func LoadComments(ctx context.Context, svc ItemService, ids []int, depth int) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return []domain.Comment{}, nil
	}
	results := svc.FetchItems(ctx, ids)
	now := time.Now()
	comments := make([]domain.Comment, 0, len(results))
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		comments = append(comments, domain.NewComment(res.Item, depth, now))
	}
	if len(comments) == 0 && len(errs) > 0 {
		return nil, fmt.Errorf("fetching %d comments: %w", len(ids), errors.Join(errs...))
	}
	return comments, nil
}

// LoadTopLevelComments fetches a story and then its direct comments at
// depth 0.
func LoadTopLevelComments(ctx context.Context, svc ItemService, storyID int) ([]domain.Comment, error) {
	results := svc.FetchItems(ctx, []int{storyID})
	if len(results) == 0 {
		return nil, fmt.Errorf("story %d: %w", storyID, domain.ErrNotFound)
	}
	if err := results[0].Err; err != nil {
		return nil, fmt.Errorf("fetching story %d: %w", storyID, err)
	}
	return LoadComments(ctx, svc, results[0].Item.Kids, 0)
}
