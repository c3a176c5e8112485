package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/config"
	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
	"github.com/oksasatya/digitalhub/internal/infrastructure/rest"
	"github.com/oksasatya/digitalhub/pkg/helpers"
)

var demoAccounts = []entity.Account{
	{Name: "Admin", Email: "admin@marocdigitalhub.ma", Password: "admin123", Role: entity.RoleAdmin},
	{Name: "Startup Demo", Email: "startup@example.com", Password: "startup123", Role: entity.RoleStartup},
	{Name: "Investisseur Demo", Email: "investor@example.com", Password: "investor123", Role: entity.RoleInvestor},
	{Name: "Visiteur Demo", Email: "visitor@example.com", Password: "visitor123", Role: entity.RoleVisitor},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	client, err := rest.New(cfg.BackendURL, rest.WithTimeout(10*time.Second), rest.WithLogger(logger))
	if err != nil {
		log.Fatalf("invalid backend url: %v", err)
	}
	accounts := rest.NewAccountCollection(client)
	ctx := context.Background()

	for _, a := range demoAccounts {
		entry := logger.WithField("email", a.Email)
		existing, err := accounts.Authenticate(ctx, a.Email, a.Password)
		switch {
		case err == nil:
			entry.WithField("id", existing.ID).Info("account already seeded")
			continue
		case !errors.Is(err, repository.ErrAuthentication):
			log.Fatalf("lookup %s: %v", a.Email, err)
		}
		created, err := accounts.Create(ctx, a)
		if err != nil {
			log.Fatalf("seed %s: %v", a.Email, err)
		}
		entry.WithFields(logrus.Fields{"id": created.ID, "role": created.Role}).Info("seeded account")
	}
}
