package model

// Group organizes directory shortcuts. Exactly one group carries
// IsDefault = true; it is the fallback target for directories whose
// original group no longer exists.
type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	IsDefault bool   `json:"isDefault"`
	Order     int    `json:"order"`
}
