package dto

// Product is the admin-facing shape of a product. SigPeriod is in seconds;
// nil limit or period fields mean unlimited / never expires.
type Product struct {
	ID                int64  `json:"id"`
	Name              string `json:"name" binding:"required"`
	SigInstallLimit   *int   `json:"sig_install_limit" binding:"omitempty,gte=0"`
	SigSessionsLimit  *int   `json:"sig_sessions_limit" binding:"omitempty,gte=0"`
	SigPeriod         *int64 `json:"sig_period" binding:"omitempty,gte=0"`
	AdditionalContent string `json:"additional_content"`
	Signatures        int    `json:"signatures"`
}

// ProductCountResponse -.
type ProductCountResponse struct {
	Count int       `json:"totalCount"`
	Data  []Product `json:"data"`
}
