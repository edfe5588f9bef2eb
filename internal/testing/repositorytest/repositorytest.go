// Package repositorytest holds the behaviour every boutique repository adapter must satisfy.
//
// Adapter tests call Run with a factory returning an empty repository:
//
//	repositorytest.Run(t, func(t *testing.T) ports.Repository { return memory.NewRepository() })
package repositorytest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
)

// Factory returns an empty repository scoped to the calling test.
type Factory func(t *testing.T) ports.Repository

// Run executes the shared repository scenarios as subtests.
func Run(t *testing.T, newRepo Factory) {
	t.Helper()
	t.Run("ListEmpty", func(t *testing.T) { testListEmpty(t, newRepo(t)) })
	t.Run("SaveAssignsIDs", func(t *testing.T) { testSaveAssignsIDs(t, newRepo(t)) })
	t.Run("SaveUpdatesExisting", func(t *testing.T) { testSaveUpdatesExisting(t, newRepo(t)) })
	t.Run("SaveMissingID", func(t *testing.T) { testSaveMissingID(t, newRepo(t)) })
	t.Run("FindByName", func(t *testing.T) { testFindByName(t, newRepo(t)) })
	t.Run("FindByOpinionRange", func(t *testing.T) { testFindByOpinionRange(t, newRepo(t)) })
	t.Run("GetByIDNotFound", func(t *testing.T) { testGetByIDNotFound(t, newRepo(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newRepo(t)) })
	t.Run("IDsNeverReused", func(t *testing.T) { testIDsNeverReused(t, newRepo(t)) })
}

// MustSave persists a store built from the given values and optional opinion.
func MustSave(t *testing.T, repo ports.Repository, name string, opinion *int32) *domain.Store {
	t.Helper()
	store, err := domain.NewStore(name, "3 Rue Paris", "Paris", 75001)
	require.NoError(t, err)
	if opinion != nil {
		store.Rate(*opinion)
	}
	saved, err := repo.Save(context.Background(), store)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	return saved
}

// Opinion returns a pointer to v.
func Opinion(v int32) *int32 { return &v }

func names(stores []*domain.Store) []string {
	out := make([]string, 0, len(stores))
	for _, s := range stores {
		out = append(out, s.Name)
	}
	return out
}

func testListEmpty(t *testing.T, repo ports.Repository) {
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func testSaveAssignsIDs(t *testing.T, repo ports.Repository) {
	first := MustSave(t, repo, "Alpha", nil)
	second := MustSave(t, repo, "Beta", nil)
	assert.NotEqual(t, first.ID, second.ID)

	fetched, err := repo.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beta", fetched.Name)
	assert.Equal(t, "3 Rue Paris", fetched.Address)
	assert.Equal(t, "Paris", fetched.City)
	assert.Equal(t, int32(75001), fetched.PostalCode)
	assert.Nil(t, fetched.Opinion)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, names(list))
}

func testSaveUpdatesExisting(t *testing.T, repo ports.Repository) {
	ctx := context.Background()
	saved := MustSave(t, repo, "Alpha", Opinion(2))
	saved.Rate(10)
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	require.NotNil(t, updated.Opinion)
	assert.Equal(t, int32(10), *updated.Opinion)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Opinion)
	assert.Equal(t, int32(10), *fetched.Opinion)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func testSaveMissingID(t *testing.T, repo ports.Repository) {
	store := domain.NewPlaceholderStore()
	require.NoError(t, store.AssignID(9999))
	_, err := repo.Save(context.Background(), store)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func testFindByName(t *testing.T, repo ports.Repository) {
	ctx := context.Background()
	MustSave(t, repo, "Chez Paul", nil)
	MustSave(t, repo, "Chez Paulette", nil)
	MustSave(t, repo, "Chez Paul", Opinion(4))

	found, err := repo.FindByName(ctx, "Chez Paul")
	require.NoError(t, err)
	assert.Len(t, found, 2)
	for _, s := range found {
		assert.Equal(t, "Chez Paul", s.Name)
	}

	none, err := repo.FindByName(ctx, "chez paul")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = repo.FindByName(ctx, "")
	assert.ErrorIs(t, err, ports.ErrInvalidArgument)
}

func testFindByOpinionRange(t *testing.T, repo ports.Repository) {
	ctx := context.Background()
	MustSave(t, repo, "unrated", nil)
	MustSave(t, repo, "one", Opinion(1))
	MustSave(t, repo, "five", Opinion(5))
	MustSave(t, repo, "ten", Opinion(10))

	found, err := repo.FindByOpinionRange(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "five"}, names(found))

	found, err = repo.FindByOpinionRange(ctx, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"five"}, names(found))

	found, err = repo.FindByOpinionRange(ctx, 10, 1)
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func testGetByIDNotFound(t *testing.T, repo ports.Repository) {
	_, err := repo.GetByID(context.Background(), 424242)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func testDelete(t *testing.T, repo ports.Repository) {
	ctx := context.Background()
	saved := MustSave(t, repo, "Alpha", nil)
	require.NoError(t, repo.Delete(ctx, saved.ID))

	_, err := repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), ports.ErrNotFound)
}

func testIDsNeverReused(t *testing.T, repo ports.Repository) {
	ctx := context.Background()
	first := MustSave(t, repo, "Alpha", nil)
	require.NoError(t, repo.Delete(ctx, first.ID))
	second := MustSave(t, repo, "Beta", nil)
	assert.NotEqual(t, first.ID, second.ID)
}
