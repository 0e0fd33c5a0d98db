package dto

// Kafka event payloads. Best-effort audit stream only - the OTP code
// itself is never published.

type UserRegisteredEvent struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

type OTPIssuedEvent struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}

type UserVerifiedEvent struct {
	Email string `json:"email"`
}
