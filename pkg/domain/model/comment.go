package model

import "time"

// Comment is the nested comment record embedded in a risk detail. Internal
// comments never reach this shape; the query filters them out.
type Comment struct {
	ID          int64      `json:"id"`
	CommentText string     `json:"comment_text"`
	CreatedAt   *time.Time `json:"created_at"`
	UserName    *string    `json:"user_name"`
}
