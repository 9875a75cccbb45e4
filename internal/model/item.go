package model

// Link is the domain model for a single entry of the form.
type Link struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Item is a Link as held by the list, tagged with its identity token.
// The ID is assigned once when the item is created and follows the
// item through reorders and content updates.
type Item struct {
	ID string `json:"id"`
	Link
}

// Links strips identity tokens, keeping order.
func Links(items []Item) []Link {
	out := make([]Link, 0, len(items))
	for _, it := range items {
		out = append(out, it.Link)
	}
	return out
}
