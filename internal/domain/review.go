package domain

// Review is a renter-authored rating of an item.
type Review struct {
	ID        string  `json:"id"`
	ItemID    string  `json:"item_id"`
	AuthorID  string  `json:"author_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ReviewList is the list response shape for review queries.
type ReviewList struct {
	Total   int      `json:"total"`
	Reviews []Review `json:"reviews"`
}

// Stars renders the rating as filled and empty star glyphs out of five.
func (r Review) Stars() string {
	rating := r.Rating
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	stars := make([]rune, 0, 5)
	for i := 0; i < 5; i++ {
		if i < rating {
			stars = append(stars, '★')
		} else {
			stars = append(stars, '☆')
		}
	}
	return string(stars)
}
