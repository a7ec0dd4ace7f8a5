package models

import (
	"net/url"
	"strconv"
)

// ConversationFilter is the three-dimensional list query: lifecycle status,
// channel, and free-text search, plus the optional priority dimension. Zero
// values mean "unfiltered" and are omitted from the request so the server
// applies its defaults.
type ConversationFilter struct {
	Status   ConversationStatus
	Channel  int64
	Priority Priority
	Search   string
}

// Query encodes the filter, dropping every dimension left at "all"/empty.
func (f ConversationFilter) Query() url.Values {
	q := url.Values{}
	if f.Status != "" && f.Status != StatusAll {
		q.Set("status", string(f.Status))
	}
	if f.Channel != 0 {
		q.Set("channel", strconv.FormatInt(f.Channel, 10))
	}
	if f.Priority != "" {
		q.Set("priority", string(f.Priority))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}
