package app

import (
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/medponto/clinica-core/internal/config"
	"github.com/medponto/clinica-core/internal/repository/kv"
	"github.com/medponto/clinica-core/internal/service/account"
	"github.com/medponto/clinica-core/internal/service/appointment"
	"github.com/medponto/clinica-core/internal/service/audit"
	"github.com/medponto/clinica-core/internal/service/exam"
	"github.com/medponto/clinica-core/internal/service/record"
	"github.com/medponto/clinica-core/internal/service/triage"
	"github.com/medponto/clinica-core/pkg/idgen"
	"github.com/medponto/clinica-core/pkg/kvstore"
	"github.com/medponto/clinica-core/pkg/kvstore/file"
	"github.com/medponto/clinica-core/pkg/kvstore/memory"
	"github.com/medponto/clinica-core/pkg/kvstore/redis"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/logger"
	"github.com/medponto/clinica-core/pkg/metrics"
	"github.com/medponto/clinica-core/pkg/security"
	"github.com/medponto/clinica-core/pkg/validator"
)

// App is the seam the presentation layer talks to. It owns the store and the
// wired services; screens call one operation per user action and render the
// typed outcome.
type App struct {
	Accounts     *account.Service
	Appointments *appointment.Service
	Records      *record.Service
	Exams        *exam.Service
	Triage       *triage.Service
	Audit        *audit.Service

	store kvstore.Store
}

type Option func(*options)

type options struct {
	store   kvstore.Store
	metrics *metrics.Metrics
}

// WithStore overrides the configured storage backend, typically with an
// in-memory store in tests.
func WithStore(store kvstore.Store) Option {
	return func(o *options) { o.store = store }
}

// WithMetrics supplies pre-built collectors. Tests use unregistered ones so
// repeated App construction does not collide in the default registry.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func New(cfg *config.Config, log *logger.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = newStore(cfg.Storage)
		if err != nil {
			return nil, err
		}
	}

	m := o.metrics
	if m == nil {
		m = metrics.NewMetrics("clinica", "core")
	}

	guard := serial.NewGuard()
	validate := validator.New()
	ids := idgen.New()
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	accountRepo := kv.NewAccountRepository(store, guard, m)
	patientRepo := kv.NewPatientRepository(store, guard, m)
	sessionRepo := kv.NewSessionRepository(store, guard, m)
	appointmentRepo := kv.NewAppointmentRepository(store, guard, m)
	recordRepo := kv.NewMedicalRecordRepository(store, guard, m)
	examRepo := kv.NewExamRepository(store, guard, m)
	auditRepo := kv.NewAuditRepository(store, guard, m)

	auditor := audit.NewService(auditRepo, log)
	throttle := account.ThrottleConfig{
		Rate:  rate.Limit(cfg.Auth.LoginRate),
		Burst: cfg.Auth.LoginBurst,
	}

	return &App{
		Accounts: account.NewService(accountRepo, patientRepo, sessionRepo,
			hasher, validate, ids, auditor, log, m, throttle),
		Appointments: appointment.NewService(appointmentRepo, validate, ids, auditor, log),
		Records:      record.NewService(recordRepo, validate, ids, auditor, log),
		Exams:        exam.NewService(examRepo, validate, ids, auditor, log),
		Triage:       triage.NewService(log),
		Audit:        auditor,
		store:        store,
	}, nil
}

// Close releases the storage backend when it holds external resources.
func (a *App) Close() error {
	if closer, ok := a.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func newStore(cfg config.StorageConfig) (kvstore.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendFile:
		return file.New(cfg.Dir)
	case config.BackendRedis:
		return redis.New(redis.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   cfg.Redis.MaxRetries,
			RetryBackoff: cfg.Redis.RetryBackoff,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
