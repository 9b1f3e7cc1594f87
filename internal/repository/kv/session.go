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

type sessionRepository struct {
	base
}

func NewSessionRepository(store kvstore.Store, guard *serial.Guard, m *metrics.Metrics) repository.SessionRepository {
	return &sessionRepository{base: newBase(store, guard, m)}
}

func (r *sessionRepository) Set(ctx context.Context, account *model.Account) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return apperrors.NewPersistence(err)
	}

	return r.guard.Do(sessionKey, func() error {
		start := time.Now()
		err := r.store.Set(ctx, sessionKey, string(raw))
		r.observe("set", start, err)
		if err != nil {
			return apperrors.NewPersistence(err)
		}
		return nil
	})
}

// Get returns nil, nil when nobody is logged in.
func (r *sessionRepository) Get(ctx context.Context) (*model.Account, error) {
	start := time.Now()
	raw, err := r.store.Get(ctx, sessionKey)
	r.observe("get", start, err)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, nil
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

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.guard.Do(sessionKey, func() error {
		start := time.Now()
		err := r.store.Remove(ctx, sessionKey)
		r.observe("remove", start, err)
		if err != nil {
			return apperrors.NewPersistence(err)
		}
		return nil
	})
}
