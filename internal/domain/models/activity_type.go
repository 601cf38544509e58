package models

// ActivityType is the admin-managed catalog of tour add-ons. Tours reference
// it by ID and snapshot the name/price at attach time (see OfferedActivity).
type ActivityType struct {
	ID             string `json:"id"`
	NameEN         string `json:"nameEn"`
	NameRU         string `json:"nameRu"`
	NameKA         string `json:"nameKa"`
	PriceIncrement int64  `json:"priceIncrement"`
	CreatedAt      string `json:"createdAt,omitempty"`
}
