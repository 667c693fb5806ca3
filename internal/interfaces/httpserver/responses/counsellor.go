package responses

// RateLimitedResponse tells the student to slow down.
type RateLimitedResponse struct {
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}
