// Package identity serializes the session identity as a signed token so a
// tampered slot is rejected on restore.
package identity

import (
	"fmt"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/pkg/helpers"
)

type TokenCodec struct {
	jwt *helpers.JWTManager
}

func NewTokenCodec(jwt *helpers.JWTManager) *TokenCodec {
	return &TokenCodec{jwt: jwt}
}

func (c *TokenCodec) Encode(a entity.Account) (string, error) {
	claims := helpers.IdentityClaims{Name: a.Name, Email: a.Email, Role: string(a.Role)}
	claims.Subject = a.ID.String()
	tok, err := c.jwt.Generate(claims)
	if err != nil {
		return "", fmt.Errorf("sign identity: %w", err)
	}
	return tok, nil
}

func (c *TokenCodec) Decode(s string) (entity.Account, error) {
	claims, err := c.jwt.Parse(s)
	if err != nil {
		return entity.Account{}, fmt.Errorf("verify identity: %w", err)
	}
	role, ok := entity.ParseRole(claims.Role)
	if !ok {
		role = entity.RoleVisitor
	}
	return entity.Account{
		ID:    entity.ID(claims.Subject),
		Name:  claims.Name,
		Email: claims.Email,
		Role:  role,
	}, nil
}
