package sendly

// MessageType classifies a message for routing priority.
type MessageType string

// Recognized message types.
const (
	MessageTypeTransactional MessageType = "transactional"
	MessageTypeMarketing     MessageType = "marketing"
	MessageTypeOTP           MessageType = "otp"
	MessageTypeAlert         MessageType = "alert"
	MessageTypePromotional   MessageType = "promotional"
)

// SendMessageParams are the parameters for SMS.Send. To is required,
// and at least one of Text or MediaURLs must be set.
type SendMessageParams struct {
	// To is the destination phone number in E.164 format.
	To string
	// Text is the message body. Optional for MMS-only messages.
	Text string
	// From is the sender phone number. Auto-selected when empty.
	From string
	// MessageType sets routing priority. Defaults to transactional.
	MessageType MessageType
	// MediaURLs are HTTPS URLs for MMS media, at most 10.
	MediaURLs []string
	// Subject is the MMS subject line.
	Subject string
	// WebhookURL receives delivery notifications. Must be HTTPS.
	WebhookURL string
	// WebhookFailoverURL is the backup webhook. Must be HTTPS.
	WebhookFailoverURL string
	// Tags label the message for analytics, at most 20 of up to 50
	// characters each.
	Tags []string
}

// Cost is the normalized price of a message.
type Cost struct {
	Amount   float64
	Currency string
}

// Routing describes how the message was routed.
type Routing struct {
	NumberType  string
	RateLimit   int
	Coverage    string
	Reason      string
	CountryCode string
}

// Message is the result of sending an SMS/MMS message. Fields absent
// from the API response are zero values, with Segments defaulting to 1
// and Direction to "outbound".
type Message struct {
	ID                 string
	Status             string
	From               string
	To                 string
	Text               string
	CreatedAt          string
	Segments           int
	Cost               *Cost
	Direction          string
	Routing            *Routing
	MessageType        string
	MediaType          string
	MediaURLs          []string
	Subject            string
	WebhookURL         string
	WebhookFailoverURL string
	Tags               []string
	Carrier            string
	LineType           string
	Parts              int
	Encoding           string
	Media              []map[string]any
}

// ListMessagesParams filter the message history returned by SMS.List.
// Zero values are omitted from the request.
type ListMessagesParams struct {
	Page   int
	Limit  int
	Status string
	Tags   []string
}

// MessageSummary is one entry of a message history page.
type MessageSummary struct {
	ID           string
	To           string
	From         string
	Text         string
	Status       string
	ProviderID   string
	ErrorCode    string
	ErrorMessage string
	APIKeyName   string
	CreatedAt    string
	UpdatedAt    string
}

// Pagination describes the position of a page within the full listing.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// MessageList is a page of message history.
type MessageList struct {
	Messages   []MessageSummary
	Pagination Pagination
}

// Stats holds usage or rate-limit statistics as returned by the API.
type Stats map[string]any
