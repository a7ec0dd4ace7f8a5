package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationFilterQuery(t *testing.T) {
	t.Parallel()

	t.Run("zero filter encodes nothing", func(t *testing.T) {
		assert.Empty(t, ConversationFilter{}.Query())
	})

	t.Run("all and empty dimensions are omitted", func(t *testing.T) {
		q := ConversationFilter{Status: StatusAll, Channel: 0, Search: ""}.Query()
		assert.Empty(t, q)
	})

	t.Run("set dimensions are encoded", func(t *testing.T) {
		q := ConversationFilter{
			Status:   StatusWaiting,
			Channel:  12,
			Priority: PriorityUrgent,
			Search:   "invoice",
		}.Query()
		assert.Equal(t, "waiting", q.Get("status"))
		assert.Equal(t, "12", q.Get("channel"))
		assert.Equal(t, "urgent", q.Get("priority"))
		assert.Equal(t, "invoice", q.Get("search"))
	})
}
