package alfresco

import (
	"context"
	"fmt"
	"net/http"
)

// tagBody is the wire shape of one tag, for both requests and responses.
type tagBody struct {
	Tag string `json:"tag"`
}

// tagListResponse is the GET .../tags response envelope.
type tagListResponse struct {
	List struct {
		Pagination struct {
			Count        int  `json:"count"`
			HasMoreItems bool `json:"hasMoreItems"`
			SkipCount    int  `json:"skipCount"`
			MaxItems     int  `json:"maxItems"`
		} `json:"pagination"`
		Entries []struct {
			Entry tagBody `json:"entry"`
		} `json:"entries"`
	} `json:"list"`
}

// GetTags fetches all tags currently on a node, walking the paginated
// listing until the repository reports no more items.
func (c *Client) GetTags(ctx context.Context, nodeID string) ([]string, error) {
	if nodeID == "" {
		return nil, ErrEmptyNodeID
	}

	var tags []string
	skip := 0
	for {
		pageURL := fmt.Sprintf("%s?skipCount=%d&maxItems=%d", c.tagsURL(nodeID), skip, c.cfg.PageSize)

		var page tagListResponse
		if err := c.do(ctx, http.MethodGet, pageURL, nil, &page); err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}

		for _, e := range page.List.Entries {
			tags = append(tags, e.Entry.Tag)
		}

		if !page.List.Pagination.HasMoreItems || page.List.Pagination.Count == 0 {
			return tags, nil
		}
		skip += page.List.Pagination.Count
	}
}

// AddTag creates a single tag on a node. A 409 Conflict from the repository
// surfaces as an *APIError; callers decide whether to absorb it.
func (c *Client) AddTag(ctx context.Context, nodeID, tag string) error {
	if nodeID == "" {
		return ErrEmptyNodeID
	}
	return c.do(ctx, http.MethodPost, c.tagsURL(nodeID), tagBody{Tag: tag}, nil)
}

// AddTags creates multiple tags on a node in one request, using the bulk
// form of the POST endpoint (a JSON array of tag bodies).
func (c *Client) AddTags(ctx context.Context, nodeID string, tags []string) error {
	if nodeID == "" {
		return ErrEmptyNodeID
	}
	payload := make([]tagBody, 0, len(tags))
	for _, tag := range tags {
		payload = append(payload, tagBody{Tag: tag})
	}
	return c.do(ctx, http.MethodPost, c.tagsURL(nodeID), payload, nil)
}
