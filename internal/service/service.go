package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/finapp-cl/finance-service/internal/analysis"
	"github.com/finapp-cl/finance-service/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Store is the persistence surface the service consumes.
type Store interface {
	CreateGoal(goal *models.FinancialGoal) error
	FindGoals(userID uuid.UUID) ([]models.FinancialGoal, error)
	FindGoal(userID, goalID uuid.UUID) (*models.FinancialGoal, error)
	DeleteGoal(userID, goalID uuid.UUID) error
	FindTransactionsSince(userID uuid.UUID, since time.Time) ([]models.Transaction, error)
	FindMainCurrency(userID uuid.UUID) (string, error)
	UsersWithGoals() ([]models.User, error)
}

// UFSource supplies today's UF value.
type UFSource interface {
	Value() float64
}

// AlertMailer sends the goal alert digest.
type AlertMailer interface {
	SendGoalAlert(to, username string, alerts []models.GoalAlert) error
}

// defaultCurrency is the settlement currency used when the user has no
// profile yet.
const defaultCurrency = "CLP"

// Service handles business logic
type Service struct {
	repo       Store
	indicators UFSource
	engine     *analysis.Engine
	mailer     AlertMailer
	log        *logrus.Logger
	now        func() time.Time
}

// NewService initializes a new service
func NewService(repo Store, indicators UFSource, engine *analysis.Engine, mailer AlertMailer, log *logrus.Logger) *Service {
	return &Service{
		repo:       repo,
		indicators: indicators,
		engine:     engine,
		mailer:     mailer,
		log:        log,
		now:        time.Now,
	}
}

// resolveInputs computes the UF value and the cash-flow snapshot once per
// request, so every goal in one response is evaluated against identical
// inputs. The snapshot is nil when the user has no transactions inside the
// trailing window.
func (s *Service) resolveInputs(userID uuid.UUID) (float64, *models.CashFlowSnapshot, error) {
	mainCurrency, err := s.repo.FindMainCurrency(userID)
	if err != nil {
		return 0, nil, err
	}
	if mainCurrency == "" {
		mainCurrency = defaultCurrency
	}

	ufValue := s.indicators.Value()

	transactions, err := s.repo.FindTransactionsSince(userID, analysis.WindowStart(s.now()))
	if err != nil {
		return 0, nil, err
	}

	var cashFlow *models.CashFlowSnapshot
	if len(transactions) > 0 {
		snapshot := analysis.MonthlyCashFlow(transactions, mainCurrency)
		cashFlow = &snapshot
	}
	return ufValue, cashFlow, nil
}

// GoalsWithAnalysis returns all goals of a user, each merged with its
// analysis.
func (s *Service) GoalsWithAnalysis(userID uuid.UUID) ([]models.AnalyzedGoal, error) {
	goals, err := s.repo.FindGoals(userID)
	if err != nil {
		return nil, err
	}

	ufValue, cashFlow, err := s.resolveInputs(userID)
	if err != nil {
		return nil, err
	}

	analyzed := make([]models.AnalyzedGoal, 0, len(goals))
	for _, goal := range goals {
		analyzed = append(analyzed, models.AnalyzedGoal{
			FinancialGoal: goal,
			Analysis:      s.engine.Analyze(goal, cashFlow, ufValue),
		})
	}

	s.log.Infof("Analyzed %d goals for user %s", len(analyzed), userID)
	return analyzed, nil
}

// GoalWithAnalysis returns one goal merged with its analysis.
func (s *Service) GoalWithAnalysis(userID, goalID uuid.UUID) (*models.AnalyzedGoal, error) {
	goal, err := s.repo.FindGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	ufValue, cashFlow, err := s.resolveInputs(userID)
	if err != nil {
		return nil, err
	}

	return &models.AnalyzedGoal{
		FinancialGoal: *goal,
		Analysis:      s.engine.Analyze(*goal, cashFlow, ufValue),
	}, nil
}

// CreateGoalInput is the payload for creating a goal.
type CreateGoalInput struct {
	Name           string          `json:"name"`
	Type           models.GoalType `json:"type"`
	Currency       string          `json:"currency"`
	TargetAmount   float64         `json:"target_amount"`
	CurrentAmount  float64         `json:"current_amount"`
	MonthlyQuota   float64         `json:"monthly_quota"`
	EstimatedYield float64         `json:"estimated_yield"`
	InterestRate   float64         `json:"interest_rate"`
	Deadline       *time.Time      `json:"deadline"`
}

func (in CreateGoalInput) validate() error {
	if in.Name == "" {
		return errors.New("nombre de meta requerido")
	}
	switch in.Type {
	case models.GoalSaving, models.GoalPurchase, models.GoalDebt, models.GoalHousing,
		models.GoalInvestment, models.GoalRetirement, models.GoalControl:
	default:
		return fmt.Errorf("tipo de meta inválido: %s", in.Type)
	}
	if in.Currency == "" {
		return errors.New("moneda requerida")
	}
	if in.TargetAmount < 0 || in.CurrentAmount < 0 || in.MonthlyQuota < 0 || in.EstimatedYield < 0 {
		return errors.New("los montos no pueden ser negativos")
	}
	if in.InterestRate < 0 || in.InterestRate > 100 {
		return errors.New("tasa de interés inválida (0-100)")
	}
	return nil
}

// CreateGoal validates and persists a new goal for the user
func (s *Service) CreateGoal(userID uuid.UUID, input CreateGoalInput) (*models.FinancialGoal, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	goal := &models.FinancialGoal{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           input.Name,
		Type:           input.Type,
		Currency:       input.Currency,
		TargetAmount:   decimal.NewFromFloat(input.TargetAmount),
		CurrentAmount:  decimal.NewFromFloat(input.CurrentAmount),
		MonthlyQuota:   decimal.NewFromFloat(input.MonthlyQuota),
		EstimatedYield: decimal.NewFromFloat(input.EstimatedYield),
		InterestRate:   decimal.NewFromFloat(input.InterestRate),
		Deadline:       input.Deadline,
	}

	if err := s.repo.CreateGoal(goal); err != nil {
		return nil, err
	}

	s.log.Infof("Goal created for user %s: %s (%s)", userID, goal.Name, goal.Type)
	return goal, nil
}

// DeleteGoal removes a goal owned by the user
func (s *Service) DeleteGoal(userID, goalID uuid.UUID) error {
	if err := s.repo.DeleteGoal(userID, goalID); err != nil {
		return err
	}
	s.log.Infof("Goal %s deleted for user %s", goalID, userID)
	return nil
}

// SendAlertDigest analyzes every user's goals and emails those whose
// analyses turned CRITICAL, AT_RISK or IMPOSSIBLE. Per-user failures are
// logged and skipped so one bad mailbox does not abort the digest.
func (s *Service) SendAlertDigest() error {
	users, err := s.repo.UsersWithGoals()
	if err != nil {
		return err
	}

	for _, user := range users {
		analyzed, err := s.GoalsWithAnalysis(user.ID)
		if err != nil {
			s.log.Warnf("Skipping digest for user %s: %v", user.ID, err)
			continue
		}

		var alerts []models.GoalAlert
		for _, goal := range analyzed {
			switch goal.Analysis.AnalysisStatus() {
			case models.StatusCritical, models.StatusAtRisk, models.StatusImpossible:
				alerts = append(alerts, models.GoalAlert{
					GoalName: goal.Name,
					Status:   goal.Analysis.AnalysisStatus(),
					Advice:   goal.Analysis.AdviceText(),
				})
			}
		}

		if len(alerts) == 0 || user.Email == "" {
			continue
		}
		if err := s.mailer.SendGoalAlert(user.Email, user.Name, alerts); err != nil {
			s.log.Warnf("Failed to send digest to %s: %v", user.Email, err)
		}
	}
	return nil
}
