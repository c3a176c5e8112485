package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

type AccountCollection struct {
	client *Client
}

func NewAccountCollection(c *Client) *AccountCollection {
	return &AccountCollection{client: c}
}

// Create registers a new account and returns the backend's record.
func (a *AccountCollection) Create(ctx context.Context, acc entity.Account) (entity.Account, error) {
	var created entity.Account
	err := a.client.do(ctx, http.MethodPost, UsersPath, nil, acc, &created)
	return created, err
}

// Authenticate queries accounts by email and password and takes the first
// match the backend returns.
func (a *AccountCollection) Authenticate(ctx context.Context, email, password string) (entity.Account, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)
	var matches []entity.Account
	if err := a.client.do(ctx, http.MethodGet, UsersPath, q, nil, &matches); err != nil {
		return entity.Account{}, err
	}
	if len(matches) == 0 {
		return entity.Account{}, fmt.Errorf("login %s: %w", email, repository.ErrAuthentication)
	}
	return matches[0], nil
}

var _ repository.AccountRepository = (*AccountCollection)(nil)
