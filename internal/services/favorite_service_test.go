package services

import (
	"context"
	"testing"

	"golang-storefront-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavoriteStore struct {
	lists map[string]*models.FavoriteList
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{lists: make(map[string]*models.FavoriteList)}
}

func (f *fakeFavoriteStore) Load(ctx context.Context, userID string) (*models.FavoriteList, error) {
	if list, ok := f.lists[userID]; ok {
		copied := models.FavoriteList{Entries: append([]models.FavoriteEntry{}, list.Entries...)}
		return &copied, nil
	}
	return &models.FavoriteList{}, nil
}

func (f *fakeFavoriteStore) Save(ctx context.Context, userID string, favorites *models.FavoriteList) error {
	f.lists[userID] = favorites
	return nil
}

func TestFavoriteServiceToggleAddsThenRemoves(t *testing.T) {
	service := NewFavoriteService(newFakeFavoriteStore())
	ctx := context.Background()
	req := &ToggleFavoriteRequest{ProductID: "p1", Name: "Herbal Tea", Price: 200}

	liked, resp, err := service.Toggle(ctx, "user-1", req)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, resp.Count)

	liked, resp, err = service.Toggle(ctx, "user-1", req)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Favorites)
}

func TestFavoriteServiceTogglePersistsAcrossLoads(t *testing.T) {
	store := newFakeFavoriteStore()
	service := NewFavoriteService(store)
	ctx := context.Background()

	_, _, err := service.Toggle(ctx, "user-1", &ToggleFavoriteRequest{ProductID: "p1", Name: "Tea", Price: 200})
	require.NoError(t, err)
	_, _, err = service.Toggle(ctx, "user-1", &ToggleFavoriteRequest{ProductID: "p2", Name: "Pickle", Price: 250})
	require.NoError(t, err)

	resp, err := service.GetFavorites(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "p1", resp.Favorites[0].ProductID)
	assert.Equal(t, "p2", resp.Favorites[1].ProductID)
}

func TestFavoriteServiceEmptyForNewUser(t *testing.T) {
	service := NewFavoriteService(newFakeFavoriteStore())

	resp, err := service.GetFavorites(context.Background(), "nobody")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Favorites)
}
