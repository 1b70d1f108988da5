// Package sendly provides a Go client SDK for the Sendly SMS/MMS API.
//
// Requests are validated locally before any network call, sent over
// HTTPS with bounded retries and exponential backoff, and every
// failure surfaces as exactly one typed error.
//
// Basic usage:
//
//	client, err := sendly.New("sl_live_your_api_key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	msg, err := client.SMS.Send(ctx, &sendly.SendMessageParams{
//	    To:   "+14155552671",
//	    Text: "Hello from Go!",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Message ID:", msg.ID)
//
// With a test API key (sl_test_*), the sandbox magic numbers in this
// package trigger predictable delivery and failure scenarios.
package sendly
