package entity

import "time"

// Product groups license keys that share entitlement rules. Nil limits mean
// unlimited, a nil Period means keys never expire.
type Product struct {
	ID                int64
	Name              string
	InstallLimit      *int
	SessionLimit      *int
	Period            *time.Duration
	AdditionalContent string
	// SignatureCount is populated on reads that join the signatures table.
	SignatureCount int
}

// Signature is one issued license key. ActivatedAt is set exactly once, on
// the first successful validation, and anchors the expiry window.
type Signature struct {
	ID                int64
	ProductID         int64
	LicenseKey        string
	Comment           string
	AdditionalContent string
	ActivatedAt       *time.Time
	// InstallationCount is populated on reads that join the installations table.
	InstallationCount int
}

// ExpiresAt returns when the signature stops validating, or nil when the
// product has no period or the signature was never activated.
func (s *Signature) ExpiresAt(p *Product) *time.Time {
	if s.ActivatedAt == nil || p == nil || p.Period == nil {
		return nil
	}

	t := s.ActivatedAt.Add(*p.Period)

	return &t
}

// Expired reports whether the signature is past its expiry window at now.
// A never-activated signature is never expired.
func (s *Signature) Expired(p *Product, now time.Time) bool {
	ends := s.ExpiresAt(p)

	return ends != nil && now.After(*ends)
}

// Installation records a device fingerprint that consumed one of a
// signature's install slots. Never recreated for the same pair.
type Installation struct {
	ID          int64
	SignatureID int64
	Fingerprint string
	CreatedAt   time.Time
}

// Session is a live claim on one of a signature's concurrent-use slots.
// A session exists while its row exists; closing deletes the row.
type Session struct {
	ID             string
	InstallationID int64
	CreatedAt      time.Time
	LastKeepAlive  time.Time
}
