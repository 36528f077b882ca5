package models

// SentinelKey is the reserved choice key meaning "no valid option here". It
// is never a valid lookup key into the dataset.
const SentinelKey = "NONE"

// Selection holds the three cascade levels of a user selection. Each field
// is either a key into the dataset at its level, the sentinel, or empty.
// Validity is derived, not stored: an unset ancestor makes every descendant
// count as unset regardless of what it still holds.
type Selection struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Format       string `json:"format"`
}

// ManufacturerSet reports whether the manufacturer level carries a real key.
func (s Selection) ManufacturerSet() bool {
	return s.Manufacturer != "" && s.Manufacturer != SentinelKey
}

// ModelSet reports whether the model level carries a real key, which
// requires the manufacturer level to be set as well.
func (s Selection) ModelSet() bool {
	return s.ManufacturerSet() && s.Model != "" && s.Model != SentinelKey
}

// FormatSet reports whether the full selection reaches a leaf.
func (s Selection) FormatSet() bool {
	return s.ModelSet() && s.Format != "" && s.Format != SentinelKey
}
