package model //import "github.com/flipbooklib/flipbook/model"

import "strings"

// EBook mirrors one row of the remote "ebooks" collection. The identifier
// and both timestamps are assigned by the store on insert.
type EBook struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	TitleLo       string   `json:"title_lo"`
	Description   string   `json:"description"`
	DescriptionLo string   `json:"description_lo"`
	// Pages holds the page image URLs in reading order. The order is
	// significant.
	Pages      []string `json:"pages"`
	CoverImage string   `json:"cover_image"`
	// BackgroundMusic and YouTubeURL are both optional. They are meant to be
	// mutually exclusive but the store does not enforce it.
	BackgroundMusic string `json:"background_music,omitempty"`
	YouTubeURL      string `json:"youtube_url,omitempty"`
	IsPublic        bool   `json:"is_public"`
	// ViewCount only ever grows, through the store's increment procedure.
	ViewCount int    `json:"view_count"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// LocalizedTitle returns the title for the given locale.
func (e *EBook) LocalizedTitle(locale Locale) string {
	if locale == LocaleLo {
		return e.TitleLo
	}
	return e.Title
}

// LocalizedDescription returns the description for the given locale.
func (e *EBook) LocalizedDescription(locale Locale) string {
	if locale == LocaleLo {
		return e.DescriptionLo
	}
	return e.Description
}

// EBookUpsert is the typed creation payload. Every optional field is a
// plain string whose zero value means "absent".
type EBookUpsert struct {
	Title           string   `json:"title"`
	TitleLo         string   `json:"title_lo"`
	Description     string   `json:"description"`
	DescriptionLo   string   `json:"description_lo"`
	Pages           []string `json:"pages"`
	CoverImage      string   `json:"cover_image"`
	BackgroundMusic string   `json:"background_music,omitempty"`
	YouTubeURL      string   `json:"youtube_url,omitempty"`
	IsPublic        bool     `json:"is_public"`
	// ViewCount is always submitted as 0; the store owns it afterwards.
	ViewCount int `json:"view_count"`
}

// Normalize strips blank page entries, preserving order, and forces the
// view counter to its initial value.
func (u *EBookUpsert) Normalize() {
	pages := make([]string, 0, len(u.Pages))
	for _, p := range u.Pages {
		if strings.TrimSpace(p) == "" {
			continue
		}
		pages = append(pages, p)
	}
	u.Pages = pages
	u.ViewCount = 0
}

// Validate reports the first missing required field.
func (u *EBookUpsert) Validate() string {
	switch {
	case strings.TrimSpace(u.Title) == "":
		return "title"
	case strings.TrimSpace(u.TitleLo) == "":
		return "title_lo"
	case strings.TrimSpace(u.Description) == "":
		return "description"
	case strings.TrimSpace(u.DescriptionLo) == "":
		return "description_lo"
	case strings.TrimSpace(u.CoverImage) == "":
		return "cover_image"
	case len(u.Pages) == 0:
		return "pages"
	}
	return ""
}
