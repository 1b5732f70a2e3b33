package models

// NewsItem is one article in the news feed surface.
type NewsItem struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	Source      NewsSource `json:"source"`
	PublishedAt string     `json:"publishedAt"`
	URLToImage  string     `json:"urlToImage,omitempty"`
	Author      string     `json:"author,omitempty"`
}

// NewsSource identifies where an article came from.
type NewsSource struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Headline is one RSS search result used as prompt context. Lighter than
// NewsItem: RSS items carry no description or image.
type Headline struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pub_date"`
	Source  string `json:"source"`
}
