package models

import "time"

// Post represents a piece of content authored by a user. A post starts as an
// unpublished draft and may later be published; publishing is a one-way
// transition with no unpublish operation.
type Post struct {
	// PostID is the internal unique identifier of the post.
	PostID int64 `json:"id"`

	// Description is the required text body of the post.
	Description string `json:"description"`

	// Published reports whether the post is visible in the public feed.
	// New posts always start with Published == false.
	Published bool `json:"published"`

	// AuthorID references the user who created the post. It is always the
	// identity resolved from the request credential, never a client-supplied
	// value.
	AuthorID int64 `json:"author_id"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the post.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
