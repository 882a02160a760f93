package dto

// Signature is the admin-facing shape of an issued license key. Activate is
// honored on creation only: it stamps the activation date immediately instead
// of waiting for the key's first validation.
type Signature struct {
	ID                int64  `json:"id"`
	ProductID         int64  `json:"product_id" binding:"required"`
	LicenseKey        string `json:"license_key" binding:"required"`
	Comment           string `json:"comment"`
	AdditionalContent string `json:"additional_content"`
	Activate          bool   `json:"activate,omitempty"`
	ActivationDate    *int64 `json:"activation_date"`
	Installed         int    `json:"installed"`
}

// SignatureCountResponse -.
type SignatureCountResponse struct {
	Count int         `json:"totalCount"`
	Data  []Signature `json:"data"`
}
