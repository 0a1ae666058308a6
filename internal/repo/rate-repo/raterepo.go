package raterepo

import (
	"context"

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

// Upsert replaces the active declaration for (member, currency). The close and
// insert run in one transaction so the one-active-per-pair invariant holds
// even with the partial unique index racing another writer.
func (r *Repository) Upsert(ctx context.Context, decl *domain.RateDeclaration) error {
	closeQuery := `
        UPDATE rate_declarations
        SET is_active = FALSE, end_date = now()
        WHERE member_id = $1 AND currency = $2 AND is_active
    `
	insertQuery := `
        INSERT INTO rate_declarations (member_id, currency, daily_rate, start_date)
        VALUES ($1, $2, $3, now())
        RETURNING id, is_active, start_date
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, closeQuery, decl.MemberID, decl.Currency); err != nil {
			zap.L().Error("can't close previous rate declaration", zap.Error(err))
			return err
		}
		err := r.db.QueryRow(ctx, insertQuery, decl.MemberID, decl.Currency, decl.DailyRate).Scan(&decl.ID, &decl.IsActive, &decl.StartDate)
		if err != nil {
			zap.L().Error("can't save rate declaration", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindActiveByGroup returns the active declarations for every member of the
// group, the calculator's fee inputs.
func (r *Repository) FindActiveByGroup(ctx context.Context, groupID int) ([]domain.RateDeclaration, error) {
	query := `
        SELECT rd.id, rd.member_id, rd.currency, rd.daily_rate, rd.is_active, rd.start_date, rd.end_date
        FROM rate_declarations rd
        JOIN members m ON m.id = rd.member_id
        WHERE m.group_id = $1 AND rd.is_active
    `
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("can't get rate declarations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var declarations []domain.RateDeclaration
	for rows.Next() {
		var d domain.RateDeclaration
		err := rows.Scan(&d.ID, &d.MemberID, &d.Currency, &d.DailyRate, &d.IsActive, &d.StartDate, &d.EndDate)
		if err != nil {
			zap.L().Error("can't scan rate declaration row", zap.Error(err))
			return nil, err
		}
		declarations = append(declarations, d)
	}
	return declarations, nil
}
