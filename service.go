package todod

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service implements the todo list operations on top of an ItemRepo. It is
// stateless between calls; the repo is the sole source of truth. Request
// bodies are validated here so that malformed input is rejected at a
// single boundary before any store access.
type Service struct {
	repo     ItemRepo
	validate *validator.Validate
}

// NewService creates a Service backed by the given repo.
func NewService(repo ItemRepo) (*Service, error) {
	if repo == nil {
		return nil, errors.New("new service: repo is required")
	}

	return &Service{
		repo:     repo,
		validate: validator.New(),
	}, nil
}

// List returns every item in the store. The scan is unbounded and the
// order is store-defined.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	if items == nil {
		items = []Item{}
	}

	return items, nil
}

// Create mints a fresh id, stores the item with completed=false, and
// returns the stored item.
func (s *Service) Create(ctx context.Context, req CreateItemRequest) (Item, error) {
	if err := s.validate.Struct(req); err != nil {
		return Item{}, fmt.Errorf("create item: title is required: %w", ErrInvalidInput)
	}

	item := Item{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Completed: false,
	}

	if err := s.repo.Put(ctx, item); err != nil {
		return Item{}, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

// SetCompleted applies a targeted completed-field write and returns the
// item as read back from the store. An id with no matching item is a
// reportable not-found condition, never a silent success.
func (s *Service) SetCompleted(ctx context.Context, req UpdateItemRequest) (Item, error) {
	if err := s.validate.Struct(req); err != nil {
		return Item{}, fmt.Errorf("update item: id and completed are required: %w", ErrInvalidInput)
	}

	if err := s.repo.SetCompleted(ctx, req.ID, *req.Completed); err != nil {
		return Item{}, fmt.Errorf("update item %s: %w", req.ID, err)
	}

	item, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		return Item{}, fmt.Errorf("update item %s: read back: %w", req.ID, err)
	}

	return item, nil
}

// Delete removes the item matching id. The confirmation is returned even
// when no such item existed; delete is idempotent.
func (s *Service) Delete(ctx context.Context, req DeleteItemRequest) (DeleteResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return DeleteResult{}, fmt.Errorf("delete item: id is required: %w", ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, req.ID); err != nil {
		return DeleteResult{}, fmt.Errorf("delete item %s: %w", req.ID, err)
	}

	return DeleteResult{Message: "Deleted", ID: req.ID}, nil
}
