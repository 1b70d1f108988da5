package sendly

import "time"

// Sandbox magic numbers. With a test API key (sl_test_*), these
// destination numbers trigger predictable behaviors, making it
// possible to exercise delivery, error, and webhook paths without
// sending real messages or incurring charges.
const (
	// Success scenarios.
	MagicSuccessInstant = "+15550001234" // instant delivery
	MagicSuccessDelay5s = "+15550001235" // success after 5 seconds
	MagicSuccessVerizon = "+15550001236" // success with Verizon carrier simulation

	// Error scenarios.
	MagicErrorInvalidNumber       = "+15550001001" // 400 invalid phone number format
	MagicErrorCarrierRejection    = "+15550001002" // 400 carrier content rejection
	MagicErrorRateLimit           = "+15550001003" // 429 rate limit exceeded
	MagicErrorTimeout             = "+15550001004" // 500 request timeout
	MagicErrorInsufficientBalance = "+15550001005" // 402 insufficient account balance

	// Delivery delays.
	MagicDelay10s = "+15550001010"
	MagicDelay30s = "+15550001030"
	MagicDelay60s = "+15550001060"

	// Carrier simulations.
	MagicCarrierVerizon = "+15550002001"
	MagicCarrierATT     = "+15550002002"
	MagicCarrierTMobile = "+15550002003"

	// Webhook scenarios.
	MagicWebhookSuccess  = "+15550003001"
	MagicWebhookTimeout  = "+15550003002"
	MagicWebhookError500 = "+15550003003"
)

// Magic number categories.
const (
	MagicCategorySuccess = "success"
	MagicCategoryError   = "error"
	MagicCategoryDelay   = "delay"
	MagicCategoryCarrier = "carrier"
	MagicCategoryWebhook = "webhook"
)

// MagicNumberInfo describes the behavior a sandbox test number
// triggers. HTTPStatus and ErrorCode are set for error scenarios only,
// Delay for delayed-delivery scenarios only.
type MagicNumberInfo struct {
	Number      string
	Category    string
	Description string
	Delay       time.Duration
	HTTPStatus  int
	ErrorCode   string
}

// magicNumbers lists every sandbox number in a fixed order so the
// category helpers return stable results.
var magicNumbers = []MagicNumberInfo{
	{Number: MagicSuccessInstant, Category: MagicCategorySuccess, Description: "Instant delivery success"},
	{Number: MagicSuccessDelay5s, Category: MagicCategorySuccess, Description: "Success with 5 second delay", Delay: 5 * time.Second},
	{Number: MagicSuccessVerizon, Category: MagicCategorySuccess, Description: "Verizon carrier simulation"},

	{Number: MagicErrorInvalidNumber, Category: MagicCategoryError, Description: "Invalid phone number format", HTTPStatus: 400, ErrorCode: "invalid_number"},
	{Number: MagicErrorCarrierRejection, Category: MagicCategoryError, Description: "Carrier content rejection", HTTPStatus: 400, ErrorCode: "carrier_rejection"},
	{Number: MagicErrorRateLimit, Category: MagicCategoryError, Description: "Rate limit exceeded", HTTPStatus: 429, ErrorCode: "rate_limit_exceeded"},
	{Number: MagicErrorTimeout, Category: MagicCategoryError, Description: "Request timeout", HTTPStatus: 500, ErrorCode: "timeout_error"},
	{Number: MagicErrorInsufficientBalance, Category: MagicCategoryError, Description: "Insufficient account balance", HTTPStatus: 402, ErrorCode: "insufficient_balance"},

	{Number: MagicDelay10s, Category: MagicCategoryDelay, Description: "10 second delivery delay", Delay: 10 * time.Second},
	{Number: MagicDelay30s, Category: MagicCategoryDelay, Description: "30 second delivery delay", Delay: 30 * time.Second},
	{Number: MagicDelay60s, Category: MagicCategoryDelay, Description: "60 second delivery delay", Delay: 60 * time.Second},

	{Number: MagicCarrierVerizon, Category: MagicCategoryCarrier, Description: "Verizon network simulation"},
	{Number: MagicCarrierATT, Category: MagicCategoryCarrier, Description: "AT&T network simulation"},
	{Number: MagicCarrierTMobile, Category: MagicCategoryCarrier, Description: "T-Mobile network simulation"},

	{Number: MagicWebhookSuccess, Category: MagicCategoryWebhook, Description: "Successful webhook delivery"},
	{Number: MagicWebhookTimeout, Category: MagicCategoryWebhook, Description: "Webhook timeout simulation"},
	{Number: MagicWebhookError500, Category: MagicCategoryWebhook, Description: "Webhook 500 error with retry"},
}

var magicNumberIndex = buildMagicNumberIndex()

func buildMagicNumberIndex() map[string]MagicNumberInfo {
	index := make(map[string]MagicNumberInfo, len(magicNumbers))
	for _, info := range magicNumbers {
		index[info.Number] = info
	}
	return index
}

// IsMagicNumber reports whether phoneNumber is a sandbox test number.
func IsMagicNumber(phoneNumber string) bool {
	_, ok := magicNumberIndex[phoneNumber]
	return ok
}

// MagicNumberInfoFor returns the sandbox behavior for a test number.
func MagicNumberInfoFor(phoneNumber string) (MagicNumberInfo, bool) {
	info, ok := magicNumberIndex[phoneNumber]
	return info, ok
}

// MagicNumbersByCategory returns all sandbox numbers in a category, in
// a stable order.
func MagicNumbersByCategory(category string) []string {
	var numbers []string
	for _, info := range magicNumbers {
		if info.Category == category {
			numbers = append(numbers, info.Number)
		}
	}
	return numbers
}

// ErrorMagicNumbers returns the sandbox numbers that produce errors.
func ErrorMagicNumbers() []string {
	return MagicNumbersByCategory(MagicCategoryError)
}

// SuccessMagicNumbers returns the sandbox numbers that succeed.
func SuccessMagicNumbers() []string {
	return MagicNumbersByCategory(MagicCategorySuccess)
}
