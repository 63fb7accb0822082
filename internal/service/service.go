package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/finwell/finance-service/internal/cache"
	"github.com/finwell/finance-service/internal/config"
	"github.com/finwell/finance-service/internal/engine"
	"github.com/finwell/finance-service/internal/metrics"
	"github.com/finwell/finance-service/internal/middleware"
	"github.com/finwell/finance-service/internal/models"
	"github.com/finwell/finance-service/internal/repository"
	"github.com/finwell/finance-service/internal/report"
	"github.com/finwell/finance-service/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Simulations are bounded by what the UI can usefully chart.
const maxSimulationYears = 100

// ErrYearsOutOfRange is returned when a simulation request exceeds the
// supported horizon.
var ErrYearsOutOfRange = fmt.Errorf("years exceeds the maximum of %d", maxSimulationYears)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	cache  cache.Cache
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo *repository.Repository, c cache.Cache, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, cache: c, log: log, config: cfg}
}

// Register creates a new user with hashed password
func (s *Service) Register(username, email, password string, reportEmail bool) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		ReportEmail:  reportEmail,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

func userIDFromContext(ctx context.Context) (int64, error) {
	userIDStr, ok := ctx.Value(middleware.UserIDKey).(string)
	if !ok || userIDStr == "" {
		return 0, fmt.Errorf("user ID not found in context")
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID: %w", err)
	}
	return userID, nil
}

// SaveSnapshot tags, encrypts, and stores the user's snapshot. Tags are
// resolved at data-entry time so the rule engine never matches free text.
func (s *Service) SaveSnapshot(ctx context.Context, snap models.FinancialSnapshot) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	tagSnapshot(&snap)

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	ciphertext, err := utils.Encrypt(string(payload), []byte(s.config.EncryptionKey))
	if err != nil {
		return fmt.Errorf("failed to encrypt snapshot: %w", err)
	}
	tag := utils.GenerateHMAC(ciphertext, s.config.HMACSecret)

	if err := s.repo.UpsertSnapshot(userID, ciphertext, tag); err != nil {
		return err
	}

	s.log.Infof("Snapshot stored for user %d", userID)
	return nil
}

// tagSnapshot fills in missing semantic tags from category names.
func tagSnapshot(snap *models.FinancialSnapshot) {
	for _, items := range [][]models.FinancialLineItem{
		snap.Incomes, snap.Expenses, snap.Savings, snap.Investments,
		snap.Debts, snap.Assets, snap.Liabilities,
	} {
		for i := range items {
			if items[i].Tag == models.TagNone {
				items[i].Tag = models.InferTag(items[i].Category)
			}
		}
	}
}

// LoadSnapshot retrieves and decrypts the user's snapshot
func (s *Service) LoadSnapshot(ctx context.Context) (models.FinancialSnapshot, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return models.FinancialSnapshot{}, err
	}
	return s.loadSnapshotByUser(userID)
}

func (s *Service) loadSnapshotByUser(userID int64) (models.FinancialSnapshot, error) {
	var snap models.FinancialSnapshot

	ciphertext, tag, err := s.repo.GetSnapshot(userID)
	if err != nil {
		return snap, err
	}
	if !utils.VerifyHMAC(ciphertext, tag, s.config.HMACSecret) {
		return snap, fmt.Errorf("snapshot integrity check failed")
	}

	payload, err := utils.Decrypt(ciphertext, []byte(s.config.EncryptionKey))
	if err != nil {
		return snap, fmt.Errorf("failed to decrypt snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return snap, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

// Insights evaluates the rule battery against the user's snapshot
func (s *Service) Insights(ctx context.Context, stressLevel int) ([]models.Insight, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.analyze(snap, engine.AnalyzeOptions{StressLevel: stressLevel}), nil
}

// analyze memoizes engine.Analyze through the cache. The key is a content
// hash, so a changed snapshot never sees a stale entry.
func (s *Service) analyze(snap models.FinancialSnapshot, opts engine.AnalyzeOptions) []models.Insight {
	key := cache.Key("insights", snap, opts)
	if raw, ok := s.cache.Get(key); ok {
		var cached []models.Insight
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			metrics.CacheHitsTotal.WithLabelValues("insights").Inc()
			return cached
		}
	}

	insights := engine.Analyze(snap, opts)
	metrics.InsightRunsTotal.Inc()

	if raw, err := json.Marshal(insights); err == nil {
		if err := s.cache.Set(key, string(raw)); err != nil {
			s.log.Warnf("Failed to cache insights: %v", err)
		}
	}
	return insights
}

// Health scores the user's snapshot
func (s *Service) Health(ctx context.Context, stressLevel int) (models.HealthAssessment, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return models.HealthAssessment{}, err
	}
	return engine.AssessHealth(snap, engine.AnalyzeOptions{StressLevel: stressLevel}), nil
}

// Simulate projects the user's snapshot forward under the given parameters
func (s *Service) Simulate(ctx context.Context, params models.SimulationParameters) (models.ProjectionResult, error) {
	if params.Years > maxSimulationYears {
		return models.ProjectionResult{}, ErrYearsOutOfRange
	}

	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return models.ProjectionResult{}, err
	}

	baseline := engine.AnnualBaseline(snap)
	result := engine.Project(baseline, params)
	metrics.SimulationsTotal.WithLabelValues("full").Inc()

	s.log.Infof("Simulation %q ran for %d years", params.Name, params.Years)
	return result, nil
}

// QuickSimulate runs the seed-baseline variant, no snapshot required
func (s *Service) QuickSimulate(params models.SimulationParameters) (models.ProjectionResult, error) {
	if params.Years > maxSimulationYears {
		return models.ProjectionResult{}, ErrYearsOutOfRange
	}
	result := engine.QuickProject(params)
	metrics.SimulationsTotal.WithLabelValues("quick").Inc()
	return result, nil
}

// SaveScenario persists a named parameter set for later reuse
func (s *Service) SaveScenario(ctx context.Context, params models.SimulationParameters) (*models.Scenario, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scenario := &models.Scenario{
		UserID:     userID,
		Parameters: params,
	}
	if err := s.repo.CreateScenario(scenario); err != nil {
		return nil, err
	}

	s.log.Infof("Scenario %q saved for user %d", params.Name, userID)
	return scenario, nil
}

// ListScenarios returns the user's saved parameter sets
func (s *Service) ListScenarios(ctx context.Context) ([]models.Scenario, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListScenarios(userID)
}

// SendHealthReports emails a health summary to every opted-in user.
// Invoked from the scheduler.
func (s *Service) SendHealthReports(sender *report.Sender) {
	users, err := s.repo.ListReportRecipients()
	if err != nil {
		s.log.Errorf("Failed to list report recipients: %v", err)
		return
	}

	for _, user := range users {
		snap, err := s.loadSnapshotByUser(user.ID)
		if err != nil {
			s.log.Warnf("Skipping report for user %d: %v", user.ID, err)
			continue
		}

		health := engine.AssessHealth(snap, engine.AnalyzeOptions{})
		insights := s.analyze(snap, engine.AnalyzeOptions{})
		if err := sender.SendHealthReport(user.Email, user.Username, health, insights); err != nil {
			continue
		}
		metrics.ReportsSentTotal.Inc()
	}
}
