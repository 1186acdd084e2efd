package app

import (
	"context"

	"github.com/CrestNiraj12/terminalhn/domain"
)

// ItemResult is one slot of a FetchItems batch. Exactly one of Item or Err
// is meaningful.
type ItemResult struct {
	ID   int
	Item domain.Item
	Err  error
}

// ItemService fetches stories and comments from the forum API.
type ItemService interface {
	// ListIDs returns the ranked story IDs for a list, best first.
	ListIDs(ctx context.Context, kind domain.StoryKind) ([]int, error)

	// FetchItems resolves ids concurrently. The result has one slot per
	// input ID, in input order; a failed item carries Err and does not
	// abort the batch.
	FetchItems(ctx context.Context, ids []int) []ItemResult

	// ItemURL returns the item's external link, or its discussion page
	// when it has none.
	ItemURL(item domain.Item) string
}
