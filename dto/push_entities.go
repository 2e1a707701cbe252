package dto

// PushRequest is one POST to a delivery endpoint; at most 100 tokens.
type PushRequest struct {
	NotificationId string   `json:"notificationId"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	TargetUrl      string   `json:"targetUrl"`
	Tokens         []string `json:"tokens"`
}

type PushResponse struct {
	SuccessfulTokens  []string `json:"successfulTokens"`
	InvalidTokens     []string `json:"invalidTokens"`
	RateLimitedTokens []string `json:"rateLimitedTokens"`
}
