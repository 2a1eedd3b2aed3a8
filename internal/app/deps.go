package app

import (
	"github.com/myung2-love/Miniter/internal/auth"
	"github.com/myung2-love/Miniter/internal/config"
	"github.com/myung2-love/Miniter/internal/db"
	"github.com/myung2-love/Miniter/internal/feed"
	"github.com/myung2-love/Miniter/internal/handlers"
	"github.com/myung2-love/Miniter/internal/repositories"
)

// buildDependencies wires together concrete implementations used by the HTTP handlers.
func buildDependencies(pool db.Pool, cfg config.Config) handlers.Dependencies {
	users := repositories.NewPostgresUserRepository(pool)
	tweets := repositories.NewPostgresTweetRepository(pool)
	follows := repositories.NewPostgresFollowRepository(pool)

	return handlers.Dependencies{
		Auth:  auth.NewAuthenticator(users, []byte(cfg.TokenSecret), cfg.TokenTTL),
		Users: users,
		Feed:  feed.NewAggregator(tweets, follows),
	}
}
