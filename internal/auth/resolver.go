package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/agro-market/internal/config"
	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/pkg/cache"
	"github.com/google/uuid"
)

type AccountGetter interface {
	GetAccount(ctx context.Context, id uuid.UUID) (entities.Account, error)
}

// Resolver turns a bearer token into a Caller. Roles come from the account
// directory, never from the token, and are cached for a short while.
type Resolver struct {
	logger   *slog.Logger
	secret   string
	issuer   string
	accounts AccountGetter
	callers  *cache.LRUCache[uuid.UUID, entities.Caller]
}

func NewResolver(logger *slog.Logger, cfg config.Auth, accounts AccountGetter) *Resolver {
	return &Resolver{
		logger:   logger.With(slog.String("component", "auth")),
		secret:   cfg.JWTSecret,
		issuer:   cfg.Issuer,
		accounts: accounts,
		callers:  cache.NewLRUCache[uuid.UUID, entities.Caller](cfg.CacheCapacity, cfg.CacheTTL),
	}
}

func (r *Resolver) ResolveCaller(ctx context.Context, token string) (entities.Caller, error) {
	id, err := ParseToken(r.secret, r.issuer, token)
	if err != nil {
		r.logger.DebugContext(ctx, "token rejected", slog.Any("error", err))
		return entities.Caller{}, fmt.Errorf("%w: %w", entities.ErrUnauthorized, err)
	}

	if caller, ok := r.callers.Get(id); ok {
		return caller, nil
	}

	account, err := r.accounts.GetAccount(ctx, id)
	if errors.Is(err, entities.ErrNotFound) {
		return entities.Caller{}, fmt.Errorf("%w: unknown account", entities.ErrUnauthorized)
	}
	if err != nil {
		return entities.Caller{}, fmt.Errorf("failed to load account: %w", err)
	}
	if !account.Role.Valid() {
		r.logger.WarnContext(ctx, "account has unknown role", slog.String("account_id", id.String()), slog.String("role", string(account.Role)))
		return entities.Caller{}, fmt.Errorf("%w: unknown role", entities.ErrUnauthorized)
	}

	caller := account.Caller()
	r.callers.Set(id, caller)
	return caller, nil
}

// Forget drops a cached role, e.g. after an account was changed.
func (r *Resolver) Forget(id uuid.UUID) {
	r.callers.Delete(id)
}

// Start runs the cache janitor until ctx is done.
func (r *Resolver) Start(ctx context.Context) error {
	return r.callers.Start(ctx)
}
