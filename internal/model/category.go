package model

// Category is a simple named recipe classification.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CreatedDate string `json:"createdDate,omitempty"`
}

// Comment is the dedicated comment record attached to a post or an event.
// Older backend revisions modelled post comments as COMMENT interactions;
// both resources are still live server-side.
type Comment struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	PostID    int64  `json:"postId,omitempty"`
	EventID   int64  `json:"eventId,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}
