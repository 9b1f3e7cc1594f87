package kv

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	apperrors "github.com/medponto/clinica-core/pkg/errors"
	"github.com/medponto/clinica-core/pkg/kvstore"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/metrics"
)

// Storage keys. These are the on-device contract shared with earlier releases
// and must not change.
const (
	accountKeyPrefix = "usuario_"
	sessionKey       = "usuarioLogado"
	patientsKey      = "pacientes"
	appointmentsKey  = "consultas"
	recordsKey       = "prontuarios"
	examsKey         = "exames"
	auditKey         = "auditoria"
)

// base carries what every kv repository needs: the store, the per-key write
// guard, and the metric collectors. Metrics may be nil in tests.
type base struct {
	store   kvstore.Store
	guard   *serial.Guard
	metrics *metrics.Metrics
}

func newBase(store kvstore.Store, guard *serial.Guard, m *metrics.Metrics) base {
	return base{store: store, guard: guard, metrics: m}
}

func (b base) observe(op string, start time.Time, err error) {
	if b.metrics == nil {
		return
	}
	status := "success"
	if err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		status = "error"
	}
	b.metrics.StoreOperations.WithLabelValues(op, status).Inc()
	b.metrics.StoreLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (b base) countMutation(ledger, action string) {
	if b.metrics == nil {
		return
	}
	b.metrics.LedgerMutations.WithLabelValues(ledger, action).Inc()
}

// readCollection loads a whole collection document. A missing key is an empty
// collection, not an error.
func readCollection[T any](ctx context.Context, b base, key string) ([]T, error) {
	start := time.Now()
	raw, err := b.store.Get(ctx, key)
	b.observe("get", start, err)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistence(err)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, apperrors.NewPersistence(err)
	}
	return items, nil
}

// writeCollection stores the full collection back as one document.
func writeCollection[T any](ctx context.Context, b base, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return apperrors.NewPersistence(err)
	}

	start := time.Now()
	err = b.store.Set(ctx, key, string(raw))
	b.observe("set", start, err)
	if err != nil {
		return apperrors.NewPersistence(err)
	}
	return nil
}

// appendTo runs one guarded read-modify-write cycle appending item to the
// collection under key.
func appendTo[T any](ctx context.Context, b base, key string, item T) error {
	return b.guard.Do(key, func() error {
		items, err := readCollection[T](ctx, b, key)
		if err != nil {
			return err
		}
		return writeCollection(ctx, b, key, append(items, item))
	})
}
