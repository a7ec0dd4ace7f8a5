package pqrsapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pqrsdesk/omnidesk/internal/models"
)

// ComplaintFilter narrows the PQRS case list.
type ComplaintFilter struct {
	Status models.ComplaintStatus
	Search string
}

func (f ComplaintFilter) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

func (c *Client) ListComplaints(ctx context.Context, filter ComplaintFilter) ([]models.Complaint, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/complaints/", filter.query(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Complaint](body)
}
