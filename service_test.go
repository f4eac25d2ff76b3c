package todod_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todod"
	"todod/store/memory"
)

func newTestService(t *testing.T) *todod.Service {
	t.Helper()
	service, err := todod.NewService(memory.New())
	require.NoError(t, err)
	return service
}

func boolPtr(b bool) *bool { return &b }

func TestNewService_RequiresRepo(t *testing.T) {
	_, err := todod.NewService(nil)
	assert.Error(t, err)
}

func TestService_CreateListRoundTrip(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	created, err := service.Create(ctx, todod.CreateItemRequest{Title: "buy milk"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "buy milk", created.Title)
	assert.False(t, created.Completed)

	items, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
}

func TestService_CreateMintsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	seen := make(map[string]bool)
	for range 10 {
		item, err := service.Create(ctx, todod.CreateItemRequest{Title: "buy milk"})
		require.NoError(t, err)
		assert.False(t, seen[item.ID], "id %s minted twice", item.ID)
		seen[item.ID] = true
	}
}

func TestService_Create_MissingTitle(t *testing.T) {
	service := newTestService(t)

	_, err := service.Create(context.Background(), todod.CreateItemRequest{})
	assert.ErrorIs(t, err, todod.ErrInvalidInput)
}

func TestService_SetCompleted_ReadBack(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	created, err := service.Create(ctx, todod.CreateItemRequest{Title: "buy milk"})
	require.NoError(t, err)

	updated, err := service.SetCompleted(ctx, todod.UpdateItemRequest{
		ID:        created.ID,
		Completed: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Title, "title is untouched by the update")

	items, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Completed)
}

func TestService_SetCompleted_ExplicitFalse(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	created, err := service.Create(ctx, todod.CreateItemRequest{Title: "buy milk"})
	require.NoError(t, err)

	_, err = service.SetCompleted(ctx, todod.UpdateItemRequest{ID: created.ID, Completed: boolPtr(true)})
	require.NoError(t, err)

	// completed:false is a valid value, not a missing field.
	updated, err := service.SetCompleted(ctx, todod.UpdateItemRequest{ID: created.ID, Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
}

func TestService_SetCompleted_NotFound(t *testing.T) {
	service := newTestService(t)

	_, err := service.SetCompleted(context.Background(), todod.UpdateItemRequest{
		ID:        "does-not-exist",
		Completed: boolPtr(true),
	})
	assert.ErrorIs(t, err, todod.ErrNotFound)
}

func TestService_SetCompleted_MissingFields(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.SetCompleted(ctx, todod.UpdateItemRequest{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, todod.ErrInvalidInput)

	_, err = service.SetCompleted(ctx, todod.UpdateItemRequest{ID: "id-1"})
	assert.ErrorIs(t, err, todod.ErrInvalidInput)
}

func TestService_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	created, err := service.Create(ctx, todod.CreateItemRequest{Title: "buy milk"})
	require.NoError(t, err)

	for range 2 {
		result, err := service.Delete(ctx, todod.DeleteItemRequest{ID: created.ID})
		require.NoError(t, err)
		assert.Equal(t, "Deleted", result.Message)
		assert.Equal(t, created.ID, result.ID)
	}

	items, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_Delete_MissingID(t *testing.T) {
	service := newTestService(t)

	_, err := service.Delete(context.Background(), todod.DeleteItemRequest{})
	assert.ErrorIs(t, err, todod.ErrInvalidInput)
}

func TestService_List_EmptyIsNotNil(t *testing.T) {
	service := newTestService(t)

	items, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items, "empty list must serialize as [] not null")
	assert.Empty(t, items)
}

type failingRepo struct {
	todod.ItemRepo
}

var errStoreDown = errors.New("store unavailable")

func (failingRepo) List(context.Context) ([]todod.Item, error) { return nil, errStoreDown }

func TestService_List_StoreFailurePropagates(t *testing.T) {
	service, err := todod.NewService(failingRepo{})
	require.NoError(t, err)

	_, err = service.List(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}
