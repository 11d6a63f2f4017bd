package news

// Article is one storefront news entry
type Article struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Date     string `json:"date"` // YYYY-MM-DD
	ImageURL string `json:"image_url,omitempty"`
}
