package domain

import "time"

// Item is a decoded API item (story, comment, job or poll). Text is already
// plain text: entities decoded, tags stripped.
type Item struct {
	ID          int
	Type        string
	Author      string
	Time        time.Time
	Title       string
	URL         string // Empty when the item has no external link
	Text        string
	Score       int
	Descendants *int
	Kids        []int
	Deleted     bool
	Dead        bool
}
