package contributionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, c *domain.Contribution) error {
	query := `
        INSERT INTO contributions (member_id, group_id, amount, currency, payment_date, status, recorded_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, c.MemberID, c.GroupID, c.Amount, c.Currency, c.PaymentDate, c.Status, c.RecordedBy).Scan(&c.ID, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't save contribution", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, contributionID int) (*domain.Contribution, error) {
	query := `
        SELECT id, member_id, group_id, amount, currency, payment_date, status, recorded_by, created_at
        FROM contributions
        WHERE id = $1
    `
	var c domain.Contribution
	err := r.db.QueryRow(ctx, query, contributionID).Scan(&c.ID, &c.MemberID, &c.GroupID, &c.Amount, &c.Currency, &c.PaymentDate, &c.Status, &c.RecordedBy, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find contribution", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// FindConfirmedInWindow returns the calculator-eligible rows: CONFIRMED
// contributions with payment_date inside [from, to).
func (r *Repository) FindConfirmedInWindow(ctx context.Context, groupID int, from, to time.Time) ([]domain.Contribution, error) {
	query := `
        SELECT id, member_id, group_id, amount, currency, payment_date, status, recorded_by, created_at
        FROM contributions
        WHERE group_id = $1 AND status = 'CONFIRMED' AND payment_date >= $2 AND payment_date < $3
        ORDER BY payment_date ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, groupID, from, to)
	if err != nil {
		zap.L().Error("can't get contributions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contributions []domain.Contribution
	for rows.Next() {
		var c domain.Contribution
		err := rows.Scan(&c.ID, &c.MemberID, &c.GroupID, &c.Amount, &c.Currency, &c.PaymentDate, &c.Status, &c.RecordedBy, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan contribution row", zap.Error(err))
			return nil, err
		}
		contributions = append(contributions, c)
	}
	return contributions, nil
}

func (r *Repository) Update(ctx context.Context, c *domain.Contribution) error {
	query := `
        UPDATE contributions
        SET amount = $1, payment_date = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, c.Amount, c.PaymentDate, c.ID)
		if err != nil {
			zap.L().Error("failed to update contribution", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Archive soft-deletes: the row stays but the calculator no longer sees it.
func (r *Repository) Archive(ctx context.Context, contributionID int) error {
	query := `
        UPDATE contributions
        SET status = 'ARCHIVED'
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, contributionID)
	if err != nil {
		zap.L().Error("failed to archive contribution", zap.Error(err))
		return err
	}
	return nil
}
