package kv

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	apperrors "github.com/medponto/clinica-core/pkg/errors"
	"github.com/medponto/clinica-core/pkg/kvstore"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/metrics"
)

type accountRepository struct {
	base
}

func NewAccountRepository(store kvstore.Store, guard *serial.Guard, m *metrics.Metrics) repository.AccountRepository {
	return &accountRepository{base: newBase(store, guard, m)}
}

func accountKey(username string) string {
	return accountKeyPrefix + username
}

// Create stores the account document, failing on a username that already has
// one. The existence check and the write run under the same key lock.
func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	key := accountKey(account.Username)
	return r.guard.Do(key, func() error {
		start := time.Now()
		_, err := r.store.Get(ctx, key)
		r.observe("get", start, err)
		if err == nil {
			return apperrors.NewConflict("username", "is already taken")
		}
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			return apperrors.NewPersistence(err)
		}

		raw, err := json.Marshal(account)
		if err != nil {
			return apperrors.NewPersistence(err)
		}

		start = time.Now()
		err = r.store.Set(ctx, key, string(raw))
		r.observe("set", start, err)
		if err != nil {
			return apperrors.NewPersistence(err)
		}

		r.countMutation("accounts", "create")
		return nil
	})
}

func (r *accountRepository) Get(ctx context.Context, username string) (*model.Account, error) {
	start := time.Now()
	raw, err := r.store.Get(ctx, accountKey(username))
	r.observe("get", start, err)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, apperrors.NewNotFound("account", err)
	}
	if err != nil {
		return nil, apperrors.NewPersistence(err)
	}

	var account model.Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, apperrors.NewPersistence(err)
	}
	return &account, nil
}
