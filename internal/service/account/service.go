package account

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	"github.com/medponto/clinica-core/internal/service/audit"
	apperrors "github.com/medponto/clinica-core/pkg/errors"
	"github.com/medponto/clinica-core/pkg/idgen"
	"github.com/medponto/clinica-core/pkg/logger"
	"github.com/medponto/clinica-core/pkg/metrics"
	"github.com/medponto/clinica-core/pkg/security"
	"github.com/medponto/clinica-core/pkg/validator"
)

// ThrottleConfig bounds how often one username may attempt to log in.
type ThrottleConfig struct {
	Rate  rate.Limit
	Burst int
}

func DefaultThrottleConfig() ThrottleConfig {
	return ThrottleConfig{Rate: rate.Limit(1), Burst: 5}
}

type Service struct {
	accounts repository.AccountRepository
	patients repository.PatientRepository
	sessions repository.SessionRepository
	hasher   security.PasswordHasher
	validate *validator.Validator
	ids      *idgen.Generator
	auditor  *audit.Service
	logger   *logger.Logger
	metrics  *metrics.Metrics

	throttle ThrottleConfig
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewService(accounts repository.AccountRepository, patients repository.PatientRepository,
	sessions repository.SessionRepository, hasher security.PasswordHasher,
	validate *validator.Validator, ids *idgen.Generator, auditor *audit.Service,
	logger *logger.Logger, m *metrics.Metrics, throttle ThrottleConfig) *Service {
	if throttle.Burst <= 0 {
		throttle = DefaultThrottleConfig()
	}
	return &Service{
		accounts: accounts,
		patients: patients,
		sessions: sessions,
		hasher:   hasher,
		validate: validate,
		ids:      ids,
		auditor:  auditor,
		logger:   logger,
		metrics:  m,
		throttle: throttle,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Register creates the credential record and appends the matching patient
// profile. The profile starts with empty contact fields; the patient fills
// them in later.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.Account, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		NationalID:   req.NationalID,
		Email:        req.Email,
		Role:         model.RolePatient,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	profile := &model.PatientProfile{
		ID:         s.ids.Next(),
		FullName:   req.FullName,
		NationalID: req.NationalID,
		Email:      req.Email,
	}
	if err := s.patients.Append(ctx, profile); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, "register", "account", account.Username, account.Username)
	s.logger.Info("account registered", "username", account.Username)

	return account, nil
}

// Login verifies the credentials and persists the account as the current
// session. Unknown usernames and password mismatches report distinct errors.
func (s *Service) Login(ctx context.Context, username, password string) (*model.Account, error) {
	if username == "" {
		return nil, apperrors.NewValidation("username", "is required")
	}
	if password == "" {
		return nil, apperrors.NewValidation("password", "is required")
	}

	if !s.limiterFor(username).Allow() {
		s.countLogin("throttled")
		return nil, apperrors.NewRateLimited("login")
	}

	account, err := s.accounts.Get(ctx, username)
	if err != nil {
		s.countLogin("unknown_user")
		return nil, err
	}

	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		s.countLogin("bad_password")
		s.logger.Warn("login rejected", "username", username)
		return nil, apperrors.NewInvalidCredentials()
	}

	if err := s.sessions.Set(ctx, account); err != nil {
		return nil, err
	}

	s.countLogin("success")
	s.auditor.Record(ctx, "login", "session", account.Username, account.Username)
	s.logger.Info("login succeeded", "username", username)

	return account, nil
}

// Logout clears the session marker. Logging out with no session is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	current, err := s.sessions.Get(ctx)
	if err != nil {
		return err
	}

	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}

	if current != nil {
		s.auditor.Record(ctx, "logout", "session", current.Username, current.Username)
	}
	return nil
}

// CurrentSession returns the logged-in account, or nil when there is none.
func (s *Service) CurrentSession(ctx context.Context) (*model.Account, error) {
	return s.sessions.Get(ctx)
}

func (s *Service) limiterFor(username string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[username]
	if !ok {
		l = rate.NewLimiter(s.throttle.Rate, s.throttle.Burst)
		s.limiters[username] = l
	}
	return l
}

func (s *Service) countLogin(outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.LoginAttempts.WithLabelValues(outcome).Inc()
}
