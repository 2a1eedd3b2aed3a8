package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myung2-love/Miniter/internal/config"
)

type fakePool struct{}

func (fakePool) Acquire(context.Context) (*pgxpool.Conn, error) {
	return nil, errors.New("not implemented")
}

func (fakePool) Close() {}

func TestBuildDependencies(t *testing.T) {
	cfg := config.Config{
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
	}

	deps := buildDependencies(fakePool{}, cfg)

	if deps.Auth == nil {
		t.Fatal("expected authenticator to be configured")
	}
	if deps.Users == nil {
		t.Fatal("expected user repository to be configured")
	}
	if deps.Feed == nil {
		t.Fatal("expected feed aggregator to be configured")
	}
}
