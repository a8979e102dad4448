package comment

import "time"

type Author struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Bio         string  `json:"bio"`
	Image       string  `json:"image"`
	FollowerIDs []int64 `json:"follower_ids"`
}

type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	AuthorID  int64     `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author Author `json:"author"`
}
