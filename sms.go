package sendly

import (
	"context"

	"github.com/sendly/sendly-go/internal/api"
)

// SMS is the resource for sending messages and reading message
// history.
type SMS struct {
	client *api.Client
}

// Send validates and sends an SMS/MMS message. Validation failures are
// returned before any network call. The result is either a fully
// populated Message or exactly one typed error, never both.
func (s *SMS) Send(ctx context.Context, params *SendMessageParams) (*Message, error) {
	if params == nil {
		return nil, &ValidationError{Message: "params are required"}
	}
	if err := validateSendParams(params); err != nil {
		return nil, err
	}

	resp, err := s.client.SendMessage(ctx, buildSendRequest(params))
	if err != nil {
		return nil, wrapError(err)
	}
	return transformMessage(resp), nil
}

// List returns a page of message history.
func (s *SMS) List(ctx context.Context, params *ListMessagesParams) (*MessageList, error) {
	query := api.Query{}
	if params != nil {
		if params.Page > 0 {
			query["page"] = params.Page
		}
		if params.Limit > 0 {
			query["limit"] = params.Limit
		}
		query["status"] = params.Status
		query["tags"] = params.Tags
	}

	resp, err := s.client.ListMessages(ctx, query)
	if err != nil {
		return nil, wrapError(err)
	}

	list := &MessageList{
		Messages: make([]MessageSummary, 0, len(resp.Data)),
		Pagination: Pagination{
			Page:       resp.Pagination.Page,
			Limit:      resp.Pagination.Limit,
			Total:      resp.Pagination.Total,
			TotalPages: resp.Pagination.TotalPages,
			HasNext:    resp.Pagination.HasNext,
			HasPrev:    resp.Pagination.HasPrev,
		},
	}
	for _, entry := range resp.Data {
		list.Messages = append(list.Messages, MessageSummary{
			ID:           entry.ID,
			To:           entry.To,
			From:         entry.From,
			Text:         entry.Text,
			Status:       entry.Status,
			ProviderID:   entry.ProviderID,
			ErrorCode:    entry.ErrorCode,
			ErrorMessage: entry.ErrorMessage,
			APIKeyName:   entry.APIKeyName,
			CreatedAt:    entry.CreatedAt,
			UpdatedAt:    entry.UpdatedAt,
		})
	}
	return list, nil
}

// Stats returns aggregate usage statistics for the API key.
func (s *SMS) Stats(ctx context.Context) (Stats, error) {
	resp, err := s.client.GetStats(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return Stats(resp.Data), nil
}

// LiveStats returns live delivery statistics.
func (s *SMS) LiveStats(ctx context.Context) (Stats, error) {
	resp, err := s.client.GetLiveStats(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return Stats(resp.Data), nil
}

// RateLimitStatus returns the current rate-limit state for the key.
func (s *SMS) RateLimitStatus(ctx context.Context) (Stats, error) {
	resp, err := s.client.GetRateLimitStatus(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return Stats(resp.Data), nil
}

// buildSendRequest maps send parameters onto the wire request. The
// message type is always sent, defaulting to transactional.
func buildSendRequest(params *SendMessageParams) *api.SendMessageRequest {
	messageType := params.MessageType
	if messageType == "" {
		messageType = MessageTypeTransactional
	}

	return &api.SendMessageRequest{
		To:                 params.To,
		MessageType:        string(messageType),
		Text:               params.Text,
		From:               params.From,
		MediaURLs:          params.MediaURLs,
		Subject:            params.Subject,
		WebhookURL:         params.WebhookURL,
		WebhookFailoverURL: params.WebhookFailoverURL,
		Tags:               params.Tags,
	}
}

// transformMessage maps a wire response onto a Message, applying the
// documented defaults. Missing fields never cause an error.
func transformMessage(resp *api.MessageResponse) *Message {
	msg := &Message{
		ID:                 resp.ID,
		Status:             resp.Status,
		From:               resp.From,
		To:                 resp.To,
		Text:               resp.Text,
		CreatedAt:          resp.CreatedAt,
		Segments:           resp.Segments,
		Direction:          resp.Direction,
		MessageType:        resp.MessageType,
		MediaType:          resp.MediaType,
		MediaURLs:          resp.MediaURLs,
		Subject:            resp.Subject,
		WebhookURL:         resp.WebhookURL,
		WebhookFailoverURL: resp.WebhookFailoverURL,
		Tags:               resp.Tags,
		Carrier:            resp.Carrier,
		LineType:           resp.LineType,
		Parts:              resp.Parts,
		Encoding:           resp.Encoding,
		Media:              resp.Media,
	}

	if msg.ID == "" {
		msg.ID = resp.MessageID
	}
	if msg.CreatedAt == "" {
		msg.CreatedAt = resp.Timestamp
	}
	if msg.Segments == 0 {
		msg.Segments = 1
	}
	if msg.Direction == "" {
		msg.Direction = "outbound"
	}
	if resp.Cost != nil {
		msg.Cost = &Cost{Amount: resp.Cost.Amount, Currency: resp.Cost.Currency}
	}
	if resp.Routing != nil {
		msg.Routing = &Routing{
			NumberType:  resp.Routing.NumberType,
			RateLimit:   resp.Routing.RateLimit,
			Coverage:    resp.Routing.Coverage,
			Reason:      resp.Routing.Reason,
			CountryCode: resp.Routing.CountryCode,
		}
	}

	return msg
}
