package dto

// WebhookEnvelope is the inbound lifecycle event: three base64url strings.
type WebhookEnvelope struct {
	Header    string `json:"header"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

// WebhookHeader is the decoded header member. Type selects the verification
// algorithm: "custody" and "app" are ECDSA over secp256k1, "ed25519" is Ed25519.
type WebhookHeader struct {
	Fid       int64  `json:"fid"`
	Type      string `json:"type"`
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Username  string `json:"username,omitempty"`
}

type WebhookPayload struct {
	Event               string               `json:"event"`
	NotificationDetails *NotificationDetails `json:"notificationDetails,omitempty"`
}

type NotificationDetails struct {
	Url   string `json:"url"`
	Token string `json:"token"`
}
