package sendly

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	phonePattern    = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	apiKeyPattern   = regexp.MustCompile(`^sl_(test|live)_[a-zA-Z0-9_-]{24,50}$`)
	tollFreePattern = regexp.MustCompile(`^1(800|833|844|855|866|877|888)`)
	nonDigits       = regexp.MustCompile(`[^0-9]`)
)

// Two-digit country codes recognized beyond the explicit 44/33/86
// prefixes, only consulted for numbers of at least 10 digits.
var twoDigitCountryCodes = map[string]bool{
	"27": true, "34": true, "39": true, "41": true, "43": true,
	"45": true, "46": true, "47": true, "48": true, "81": true,
	"82": true, "91": true, "92": true, "93": true, "94": true,
	"95": true,
}

// isValidPhoneNumber reports whether phone is in E.164 format.
func isValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// isValidAPIKey reports whether apiKey matches the sl_test_*/sl_live_*
// format.
func isValidAPIKey(apiKey string) bool {
	return apiKeyPattern.MatchString(apiKey)
}

// isValidURL reports whether raw parses as a URL with a scheme and
// host.
func isValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

// isHTTPSURL reports whether raw uses the https scheme.
func isHTTPSURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme == "https"
}

// getCountryCode extracts the country code from an E.164-ish phone
// number using a longest-known-prefix heuristic. Unrecognized prefixes
// return "unknown".
func getCountryCode(phoneNumber string) string {
	clean := nonDigits.ReplaceAllString(phoneNumber, "")

	switch {
	case strings.HasPrefix(clean, "1"):
		return "1" // US/Canada
	case strings.HasPrefix(clean, "44"):
		return "44" // UK
	case strings.HasPrefix(clean, "33"):
		return "33" // France
	case strings.HasPrefix(clean, "86"):
		return "86" // China
	}

	if len(clean) >= 10 && twoDigitCountryCodes[clean[:2]] {
		return clean[:2]
	}

	return "unknown"
}

// isTollFree reports whether phoneNumber uses a recognized US/Canada
// toll-free prefix.
func isTollFree(phoneNumber string) bool {
	clean := nonDigits.ReplaceAllString(phoneNumber, "")
	return tollFreePattern.MatchString(clean)
}

// validateTollFreeRouting rejects sending from a toll-free number to a
// destination outside US/Canada.
func validateTollFreeRouting(from, to string) error {
	if !isTollFree(from) {
		return nil
	}
	if getCountryCode(to) != "1" {
		return &ValidationError{Message: fmt.Sprintf(
			"toll-free number %s cannot send to international destination %s: toll-free numbers only support US/Canada",
			from, to)}
	}
	return nil
}

// validMessageTypes is the closed set accepted by the API.
var validMessageTypes = map[MessageType]bool{
	MessageTypeTransactional: true,
	MessageTypeMarketing:     true,
	MessageTypeOTP:           true,
	MessageTypeAlert:         true,
	MessageTypePromotional:   true,
}

// validateSendParams checks a send request against the API's rules,
// returning a ValidationError for the first rule broken. It is pure
// and performs no network access.
func validateSendParams(params *SendMessageParams) error {
	if params.To == "" {
		return &ValidationError{Message: "to is required"}
	}

	if params.Text == "" && len(params.MediaURLs) == 0 {
		return &ValidationError{Message: "either text or media URLs must be provided"}
	}

	if !isValidPhoneNumber(params.To) {
		return &ValidationError{Message: "invalid phone number format for to"}
	}

	if params.From != "" {
		if !isValidPhoneNumber(params.From) {
			return &ValidationError{Message: "invalid phone number format for from"}
		}
		if err := validateTollFreeRouting(params.From, params.To); err != nil {
			return err
		}
	}

	if len(params.MediaURLs) > 0 {
		if len(params.MediaURLs) > 10 {
			return &ValidationError{Message: "maximum 10 media URLs allowed"}
		}
		for _, mediaURL := range params.MediaURLs {
			if strings.TrimSpace(mediaURL) == "" {
				return &ValidationError{Message: "media URLs cannot be empty"}
			}
			if !isValidURL(mediaURL) {
				return &ValidationError{Message: "invalid URL format in media URLs"}
			}
			if !isHTTPSURL(mediaURL) {
				return &ValidationError{Message: "media URLs must use HTTPS"}
			}
		}
	}

	if params.WebhookURL != "" {
		if !isValidURL(params.WebhookURL) {
			return &ValidationError{Message: "invalid webhook URL format"}
		}
		if !isHTTPSURL(params.WebhookURL) {
			return &ValidationError{Message: "webhook URL must use HTTPS"}
		}
	}

	if params.WebhookFailoverURL != "" {
		if !isValidURL(params.WebhookFailoverURL) {
			return &ValidationError{Message: "invalid webhook failover URL format"}
		}
		if !isHTTPSURL(params.WebhookFailoverURL) {
			return &ValidationError{Message: "webhook failover URL must use HTTPS"}
		}
	}

	if len(params.Tags) > 0 {
		if len(params.Tags) > 20 {
			return &ValidationError{Message: "maximum 20 tags allowed"}
		}
		for _, tag := range params.Tags {
			if strings.TrimSpace(tag) == "" {
				return &ValidationError{Message: "tags cannot be empty"}
			}
			if len(tag) > 50 {
				return &ValidationError{Message: "tag length cannot exceed 50 characters"}
			}
		}
	}

	if params.MessageType != "" && !validMessageTypes[params.MessageType] {
		return &ValidationError{Message: fmt.Sprintf(
			"invalid message type %q, must be one of: transactional, marketing, otp, alert, promotional",
			params.MessageType)}
	}

	return nil
}
