package models

// JournalArticle is a blog entry. Content is a trusted HTML fragment written
// by the business, rendered as-is by the site.
type JournalArticle struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Image   string `json:"image"`
	Content string `json:"content"`
}
