package api

import (
	"context"
)

// SendMessage posts a message to the send endpoint.
func (c *Client) SendMessage(ctx context.Context, req *SendMessageRequest) (*MessageResponse, error) {
	var result MessageResponse
	if err := c.Post(ctx, "/v1/send", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListMessages returns a page of message history.
func (c *Client) ListMessages(ctx context.Context, query Query) (*MessageListResponse, error) {
	var result MessageListResponse
	if err := c.Get(ctx, "/v1/messages", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStats returns aggregate usage statistics.
func (c *Client) GetStats(ctx context.Context) (*StatsResponse, error) {
	var result StatsResponse
	if err := c.Get(ctx, "/v1/stats", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetLiveStats returns live delivery statistics.
func (c *Client) GetLiveStats(ctx context.Context) (*StatsResponse, error) {
	var result StatsResponse
	if err := c.Get(ctx, "/v1/stats/live", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRateLimitStatus returns the current rate-limit state for the key.
func (c *Client) GetRateLimitStatus(ctx context.Context) (*StatsResponse, error) {
	var result StatsResponse
	if err := c.Get(ctx, "/v1/rate-limits", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
