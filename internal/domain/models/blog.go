package models

import "strings"

// Blog is a localized article shown on the public site.
type Blog struct {
	ID        int64    `json:"id"`
	TitleEN   string   `json:"titleEn"`
	TitleRU   string   `json:"titleRu"`
	TitleKA   string   `json:"titleKa"`
	BodyEN    string   `json:"bodyEn"`
	BodyRU    string   `json:"bodyRu"`
	BodyKA    string   `json:"bodyKa"`
	Images    []string `json:"images,omitempty"`
	Published bool     `json:"published"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

func (b Blog) TitleFor(locale string) string {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "ru":
		if b.TitleRU != "" {
			return b.TitleRU
		}
	case "ka":
		if b.TitleKA != "" {
			return b.TitleKA
		}
	}
	return b.TitleEN
}
