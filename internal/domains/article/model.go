package article

import "time"

// Author carries the profile columns joined onto every article row plus
// the follower set, so responses can be projected without extra queries.
type Author struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Bio         string  `json:"bio"`
	Image       string  `json:"image"`
	FollowerIDs []int64 `json:"follower_ids"`
}

type Article struct {
	ID          int64     `json:"id"`
	AuthorID    int64     `json:"author_id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	TagList     []string  `json:"tag_list"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author      Author  `json:"author"`
	FavoritedBy []int64 `json:"favorited_by"`
}
