package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterBuild_Empty(t *testing.T) {
	sql, args := NewFilter().Build(1)

	assert.Equal(t, " ORDER BY a.updated_at DESC, a.id ASC", sql)
	assert.Empty(t, args)
}

func TestFilterBuild_SinglePredicate(t *testing.T) {
	sql, args := NewFilter().Where(ByAuthor("jake")).Build(1)

	assert.Equal(t, " WHERE u.username = $1 ORDER BY a.updated_at DESC, a.id ASC", sql)
	assert.Equal(t, []any{"jake"}, args)
}

func TestFilterBuild_PredicatesCombineWithAND(t *testing.T) {
	sql, args := NewFilter().
		Where(ByAuthor("jake")).
		Where(ByTag("dragons")).
		Build(1)

	assert.Contains(t, sql, "u.username = $1 AND $2 = ANY(a.tag_list)")
	assert.Equal(t, []any{"jake", "dragons"}, args)
}

func TestFilterBuild_Pagination(t *testing.T) {
	sql, args := NewFilter().
		Where(ByTag("go")).
		Limit(20).
		Offset(40).
		Build(1)

	assert.Contains(t, sql, "LIMIT $2")
	assert.Contains(t, sql, "OFFSET $3")
	assert.Equal(t, []any{"go", 20, 40}, args)
}

func TestFilterBuild_ZeroPaginationOmitted(t *testing.T) {
	sql, _ := NewFilter().Limit(0).Offset(0).Build(1)

	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, sql, "OFFSET")
}

func TestFilterBuild_PlaceholdersStartAtFirstParam(t *testing.T) {
	sql, args := NewFilter().Where(ByFavoritedBy("jane")).Build(3)

	assert.Contains(t, sql, "fu.username = $3")
	assert.Equal(t, []any{"jane"}, args)
}

func TestFilterBuild_FeedPredicate(t *testing.T) {
	sql, args := NewFilter().Where(ByFollowedBy(42)).Build(1)

	assert.Contains(t, sql, "fl.follower_id = $1")
	assert.Equal(t, []any{int64(42)}, args)
}
