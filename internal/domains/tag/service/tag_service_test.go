package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTagRepo mirrors the upsert semantics of the real catalogue: names
// are a set, listed sorted.
type fakeTagRepo struct {
	names map[string]bool
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{names: make(map[string]bool)}
}

func (f *fakeTagRepo) SaveAll(_ context.Context, names []string) error {
	for _, name := range names {
		f.names[name] = true
	}
	return nil
}

func (f *fakeTagRepo) List(_ context.Context) ([]string, error) {
	out := make([]string, 0, len(f.names))
	for name := range f.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func TestList_UnionOfEverySavedTag(t *testing.T) {
	repo := newFakeTagRepo()
	svc := NewTagService(repo)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, []string{"go", "gin"}))
	require.NoError(t, repo.SaveAll(ctx, []string{"gin", "postgres"}))

	tags, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"gin", "go", "postgres"}, tags)
}

func TestList_EmptyCatalogue(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())

	tags, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tags)
	assert.Empty(t, tags)
}
