package article

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrDuplicateSlug   = errors.New("article with this slug already exists")
	ErrNotAuthor       = errors.New("only the author may modify this article")
)
