package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

// Collection is the CRUD surface of one resource collection.
type Collection[T any] struct {
	client *Client
	path   string
}

func NewCollection[T any](c *Client, path string) *Collection[T] {
	return &Collection[T]{client: c, path: path}
}

func (col *Collection[T]) itemPath(id entity.ID) string {
	return col.path + "/" + url.PathEscape(id.String())
}

// List returns the collection in backend order.
func (col *Collection[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := col.client.do(ctx, http.MethodGet, col.path, nil, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (col *Collection[T]) Get(ctx context.Context, id entity.ID) (T, error) {
	var item T
	err := col.client.do(ctx, http.MethodGet, col.itemPath(id), nil, nil, &item)
	return item, err
}

// Create posts payload; the backend assigns the id.
func (col *Collection[T]) Create(ctx context.Context, payload T) (T, error) {
	var item T
	err := col.client.do(ctx, http.MethodPost, col.path, nil, payload, &item)
	return item, err
}

// Update replaces the entity wholesale.
func (col *Collection[T]) Update(ctx context.Context, id entity.ID, payload T) (T, error) {
	var item T
	err := col.client.do(ctx, http.MethodPut, col.itemPath(id), nil, payload, &item)
	return item, err
}

func (col *Collection[T]) Delete(ctx context.Context, id entity.ID) error {
	return col.client.do(ctx, http.MethodDelete, col.itemPath(id), nil, nil, nil)
}

// Patch applies a partial update and returns the canonical entity.
func (col *Collection[T]) Patch(ctx context.Context, id entity.ID, partial any) (T, error) {
	var item T
	err := col.client.do(ctx, http.MethodPatch, col.itemPath(id), nil, partial, &item)
	return item, err
}

var (
	_ repository.StartupRepository    = (*Collection[entity.Startup])(nil)
	_ repository.DiscussionRepository = (*Collection[entity.Discussion])(nil)
)
