package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finapp-cl/finance-service/internal/models"
	"github.com/google/uuid"
)

// ErrGoalNotFound is returned when a goal lookup by (id, userID) yields
// nothing.
var ErrGoalNotFound = errors.New("goal not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const goalColumns = `id, user_id, name, type, currency, target_amount, current_amount,
		COALESCE(monthly_quota, 0), COALESCE(estimated_yield, 0), COALESCE(interest_rate, 0),
		deadline, created_at, updated_at`

// CreateGoal creates a new financial goal in the database
func (r *Repository) CreateGoal(goal *models.FinancialGoal) error {
	query := `
		INSERT INTO financial_goals (id, user_id, name, type, currency, target_amount, current_amount,
			monthly_quota, estimated_yield, interest_rate, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, goal.ID, goal.UserID, goal.Name, goal.Type, goal.Currency,
		goal.TargetAmount, goal.CurrentAmount, goal.MonthlyQuota, goal.EstimatedYield,
		goal.InterestRate, goal.Deadline).
		Scan(&goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// FindGoals retrieves all financial goals owned by the user
func (r *Repository) FindGoals(userID uuid.UUID) ([]models.FinancialGoal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM financial_goals
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goals: %w", err)
	}
	defer rows.Close()

	var goals []models.FinancialGoal
	for rows.Next() {
		var goal models.FinancialGoal
		if err := scanGoal(rows, &goal); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}
	return goals, nil
}

// FindGoal retrieves one goal by id, scoped to its owner
func (r *Repository) FindGoal(userID, goalID uuid.UUID) (*models.FinancialGoal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM financial_goals
		WHERE id = $1 AND user_id = $2`
	goal := &models.FinancialGoal{}
	err := scanGoal(r.db.QueryRow(query, goalID, userID), goal)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}

// DeleteGoal removes a goal, scoped to its owner
func (r *Repository) DeleteGoal(userID, goalID uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM financial_goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if affected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// FindTransactionsSince retrieves the user's transactions dated on or after
// the given time, with the owning account's currency
func (r *Repository) FindTransactionsSince(userID uuid.UUID, since time.Time) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.account_id, t.amount, t.type, COALESCE(t.description, ''), t.date, a.currency
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE a.user_id = $1 AND t.date >= $2`
	rows, err := r.db.Query(query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Amount, &tx.Type, &tx.Description, &tx.Date, &tx.AccountCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return transactions, nil
}

// FindMainCurrency retrieves the user's main settlement currency. An empty
// string means no profile is set up yet.
func (r *Repository) FindMainCurrency(userID uuid.UUID) (string, error) {
	var currency string
	query := `SELECT COALESCE(main_currency, '') FROM user_profiles WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&currency)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find main currency: %w", err)
	}
	return currency, nil
}

// UsersWithGoals retrieves every user owning at least one goal, for the
// alert digest
func (r *Repository) UsersWithGoals() ([]models.User, error) {
	query := `
		SELECT DISTINCT u.id, u.email, u.name
		FROM users u
		JOIN financial_goals g ON g.user_id = u.id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to find users with goals: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(row scanner, goal *models.FinancialGoal) error {
	return row.Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.Type, &goal.Currency,
		&goal.TargetAmount, &goal.CurrentAmount, &goal.MonthlyQuota, &goal.EstimatedYield,
		&goal.InterestRate, &goal.Deadline, &goal.CreatedAt, &goal.UpdatedAt)
}
