package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SendMessageRequest is the POST /v1/send request body.
type SendMessageRequest struct {
	To                 string   `json:"to"`
	MessageType        string   `json:"messageType"`
	Text               string   `json:"text,omitempty"`
	From               string   `json:"from,omitempty"`
	MediaURLs          []string `json:"media_urls,omitempty"`
	Subject            string   `json:"subject,omitempty"`
	WebhookURL         string   `json:"webhook_url,omitempty"`
	WebhookFailoverURL string   `json:"webhook_failover_url,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}

// Cost normalizes the API's cost field, which can arrive as a plain
// number, a currency string like "$0.00", or an {amount, currency}
// object. Missing currency defaults to USD.
type Cost struct {
	Amount   float64
	Currency string
}

// UnmarshalJSON accepts all three wire shapes of the cost field.
func (c *Cost) UnmarshalJSON(data []byte) error {
	var amount float64
	if err := json.Unmarshal(data, &amount); err == nil {
		c.Amount = amount
		c.Currency = "USD"
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(text)
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return fmt.Errorf("invalid cost string %q", text)
		}
		c.Amount = parsed
		c.Currency = "USD"
		return nil
	}

	var obj struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid cost value: %s", data)
	}
	c.Amount = obj.Amount
	c.Currency = obj.Currency
	if c.Currency == "" {
		c.Currency = "USD"
	}
	return nil
}

// Routing is the smart-routing block of a send response.
type Routing struct {
	NumberType  string `json:"numberType"`
	RateLimit   int    `json:"rateLimit"`
	Coverage    string `json:"coverage"`
	Reason      string `json:"reason"`
	CountryCode string `json:"countryCode"`
}

// MessageResponse is the POST /v1/send response body. Every field is
// optional on the wire; defaulting happens in the public package.
type MessageResponse struct {
	ID                 string           `json:"id"`
	MessageID          string           `json:"messageId"`
	Status             string           `json:"status"`
	From               string           `json:"from"`
	To                 string           `json:"to"`
	Text               string           `json:"text"`
	CreatedAt          string           `json:"created_at"`
	Timestamp          string           `json:"timestamp"`
	Segments           int              `json:"segments"`
	Cost               *Cost            `json:"cost"`
	Direction          string           `json:"direction"`
	Routing            *Routing         `json:"routing"`
	MessageType        string           `json:"messageType"`
	MediaType          string           `json:"mediaType"`
	MediaURLs          []string         `json:"media_urls"`
	Subject            string           `json:"subject"`
	WebhookURL         string           `json:"webhook_url"`
	WebhookFailoverURL string           `json:"webhook_failover_url"`
	Tags               []string         `json:"tags"`
	Carrier            string           `json:"carrier"`
	LineType           string           `json:"lineType"`
	Parts              int              `json:"parts"`
	Encoding           string           `json:"encoding"`
	Media              []map[string]any `json:"media"`
}

// MessageSummary is one entry of the GET /v1/messages response.
type MessageSummary struct {
	ID           string `json:"id"`
	To           string `json:"to"`
	From         string `json:"from"`
	Text         string `json:"text"`
	Status       string `json:"status"`
	ProviderID   string `json:"provider_id"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	APIKeyName   string `json:"api_key_name"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Pagination is the paging block of list responses.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// MessageListResponse is the GET /v1/messages response body.
type MessageListResponse struct {
	Success    bool             `json:"success"`
	Data       []MessageSummary `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// StatsResponse is the body of the stats and rate-limit endpoints.
type StatsResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

// errorResponse is the error body the API returns with non-2xx
// statuses.
type errorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}
