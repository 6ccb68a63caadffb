package repositories

import (
	"context"
	"errors"

	"shopmart/internal/common"
	"shopmart/internal/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	AdjustBalance(ctx context.Context, id int64, delta float64) (*models.User, error)
}

type userRepo struct {
	db Database
}

func NewUserRepo(db Database) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, name, balance, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email, &user.Name, &user.Balance, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &common.NotFoundError{Resource: "User", ID: id}
		}
		return nil, err
	}
	return user, nil
}

// AdjustBalance applies delta to the user's balance in one atomic statement.
// The WHERE guard keeps the balance from ever going negative, so a debit that
// would overdraw affects zero rows instead of violating the invariant.
func (r *userRepo) AdjustBalance(ctx context.Context, id int64, delta float64) (*models.User, error) {
	user := &models.User{}
	query := `
		UPDATE users
		SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1 AND balance + $2 >= 0
		RETURNING id, email, name, balance, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, id, delta).Scan(&user.ID, &user.Email, &user.Name, &user.Balance, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Zero rows means either the user is absent or the guard fired.
			current, lookupErr := r.GetByID(ctx, id)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return nil, &common.InsufficientBalanceError{UserID: id, Required: -delta, Balance: current.Balance}
		}
		return nil, err
	}
	return user, nil
}
