package article

import (
	"fmt"
	"strings"
)

// placeholder hands out the next $n marker while collecting its argument.
type placeholder func(arg any) string

// Predicate contributes one WHERE condition to a listing query. All
// predicates on a filter are combined with AND.
type Predicate interface {
	condition(ph placeholder) string
}

type byAuthor struct{ username string }

func (p byAuthor) condition(ph placeholder) string {
	return fmt.Sprintf("u.username = %s", ph(p.username))
}

// ByAuthor keeps articles written by the named user.
func ByAuthor(username string) Predicate {
	return byAuthor{username: username}
}

type byTag struct{ tag string }

func (p byTag) condition(ph placeholder) string {
	return fmt.Sprintf("%s = ANY(a.tag_list)", ph(p.tag))
}

// ByTag keeps articles whose tag list contains the tag.
func ByTag(tag string) Predicate {
	return byTag{tag: tag}
}

type byFavoritedBy struct{ username string }

func (p byFavoritedBy) condition(ph placeholder) string {
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM favorites f JOIN users fu ON fu.id = f.user_id WHERE f.article_id = a.id AND fu.username = %s)",
		ph(p.username))
}

// ByFavoritedBy keeps articles favorited by the named user.
func ByFavoritedBy(username string) Predicate {
	return byFavoritedBy{username: username}
}

type byFollowedBy struct{ userID int64 }

func (p byFollowedBy) condition(ph placeholder) string {
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM follows fl WHERE fl.followee_id = a.author_id AND fl.follower_id = %s)",
		ph(p.userID))
}

// ByFollowedBy keeps articles whose author the given user follows.
// Backs the feed listing.
func ByFollowedBy(userID int64) Predicate {
	return byFollowedBy{userID: userID}
}

// Filter is an AND-combination of predicates plus pagination. The zero
// value selects everything with no limit.
type Filter struct {
	predicates []Predicate
	limit      int
	offset     int
}

func NewFilter() *Filter {
	return &Filter{}
}

func (f *Filter) Where(p Predicate) *Filter {
	f.predicates = append(f.predicates, p)
	return f
}

func (f *Filter) Limit(n int) *Filter {
	f.limit = n
	return f
}

func (f *Filter) Offset(n int) *Filter {
	f.offset = n
	return f
}

// Build renders the WHERE and pagination clauses with positional
// parameters numbered from firstParam. The returned SQL starts with a
// leading space when non-empty so it can be appended to a base query.
func (f *Filter) Build(firstParam int) (string, []any) {
	var args []any
	next := firstParam
	ph := func(arg any) string {
		marker := fmt.Sprintf("$%d", next)
		args = append(args, arg)
		next++
		return marker
	}

	var sb strings.Builder
	if len(f.predicates) > 0 {
		conditions := make([]string, 0, len(f.predicates))
		for _, p := range f.predicates {
			conditions = append(conditions, p.condition(ph))
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	sb.WriteString(" ORDER BY a.updated_at DESC, a.id ASC")

	if f.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %s", ph(f.limit)))
	}
	if f.offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET %s", ph(f.offset)))
	}

	return sb.String(), args
}
