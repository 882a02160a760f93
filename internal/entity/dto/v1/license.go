package dto

// KeyInfoRequest identifies a license key for a read-only lookup.
type KeyInfoRequest struct {
	LicenseKey string `json:"license_key" binding:"required" example:"XXXX-YYYY-ZZZZ"`
}

// LicenseInfo is the client-facing view of a license key. Ends and Activated
// are unix-second timestamps; both are null until the key is activated, Ends
// stays null for products without a period.
type LicenseInfo struct {
	AdditionalContentSignature string `json:"additional_content_signature"`
	AdditionalContentProduct   string `json:"additional_content_product"`
	Ends                       *int64 `json:"ends"`
	Activated                  *int64 `json:"activated"`
	InstallLimit               *int   `json:"install_limit"`
	SessionsLimit              *int   `json:"sessions_limit"`
}

// StartSessionRequest asks to validate a key and open a session for a device.
type StartSessionRequest struct {
	LicenseKey  string `json:"license_key" binding:"required"`
	Fingerprint string `json:"fingerprint" binding:"required"`
}

// SessionID carries the opaque session token, both in responses to session
// starts and in keep-alive / end requests.
type SessionID struct {
	SessionID string `json:"session_id" binding:"required"`
}

// Successful -.
type Successful struct {
	Success bool `json:"success"`
}
