package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type accountRepo struct {
	postgresRepo
}

func NewAccountRepo(db *sqlx.DB) *accountRepo {
	return &accountRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *accountRepo) GetAccount(ctx context.Context, id uuid.UUID) (entities.Account, error) {
	query, args := r.qb.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"id": id}).
		MustSql()

	var account Account
	err := r.getContext(ctx, &account, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Account{}, entities.ErrAccountNotFound
	}
	if err != nil {
		return entities.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return AccountToEntity(account), nil
}

func (r *accountRepo) AccountsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.Account, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]entities.Account{}, nil
	}

	query, args := r.qb.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var rows []Account
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}

	accounts := make(map[uuid.UUID]entities.Account, len(rows))
	for _, a := range rows {
		accounts[a.ID] = AccountToEntity(a)
	}
	return accounts, nil
}

func (r *accountRepo) CreateAccount(ctx context.Context, a entities.Account) error {
	query, args := r.qb.Insert("accounts").
		Columns(accountColumns...).
		Values(a.ID, a.Name, a.Email, string(a.Role), a.Contact, a.FarmName, a.CreatedAt, a.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}
