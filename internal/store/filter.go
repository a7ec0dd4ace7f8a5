package store

import (
	"context"

	"github.com/pqrsdesk/omnidesk/internal/models"
)

// Each setter changes one filter dimension and re-queries the list exactly
// once. The sequence guard in LoadList makes sure the list the caller ends up
// seeing always corresponds to the last issued filter state.

func (s *Store) SetStatusFilter(ctx context.Context, status models.ConversationStatus) error {
	filter := s.Filter()
	filter.Status = status
	return s.LoadList(ctx, filter)
}

func (s *Store) SetChannelFilter(ctx context.Context, channelID int64) error {
	filter := s.Filter()
	filter.Channel = channelID
	return s.LoadList(ctx, filter)
}

func (s *Store) SetPriorityFilter(ctx context.Context, priority models.Priority) error {
	filter := s.Filter()
	filter.Priority = priority
	return s.LoadList(ctx, filter)
}

func (s *Store) SetSearch(ctx context.Context, term string) error {
	filter := s.Filter()
	filter.Search = term
	return s.LoadList(ctx, filter)
}
