package grouprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/internal/pg"
	"go.uber.org/zap"
)

const groupColumns = `id, organizer_id, name, join_code, cycle_days, current_cycle, cycle_start_date, group_type, default_currency, status, created_at`

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

func (r *Repository) Create(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	query := `
		INSERT INTO groups (organizer_id, name, join_code, cycle_days, group_type, default_currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, current_cycle, cycle_start_date, status, created_at
	`
	err := r.db.QueryRow(ctx, query,
		group.OrganizerID, group.Name, group.JoinCode, group.CycleDays, group.GroupType, group.DefaultCurrency,
	).Scan(&group.ID, &group.CurrentCycle, &group.CycleStartDate, &group.Status, &group.CreatedAt)
	if err != nil {
		zap.L().Error("can't save group", zap.Error(err))
		return nil, err
	}
	return group, nil
}

func (r *Repository) FindByID(ctx context.Context, groupID int) (*domain.Group, error) {
	query := `
        SELECT ` + groupColumns + `
        FROM groups
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, groupID))
}

// FindByIDForUpdate locks the group row for the rest of the transaction.
// Finalization runs behind this lock so two concurrent finalize calls for the
// same group serialize instead of double-writing.
func (r *Repository) FindByIDForUpdate(ctx context.Context, groupID int) (*domain.Group, error) {
	query := `
        SELECT ` + groupColumns + `
        FROM groups
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, groupID))
}

func (r *Repository) FindByJoinCode(ctx context.Context, joinCode string) (*domain.Group, error) {
	query := `
        SELECT ` + groupColumns + `
        FROM groups
        WHERE join_code = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, joinCode))
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Group, error) {
	query := `
        SELECT DISTINCT g.id, g.organizer_id, g.name, g.join_code, g.cycle_days, g.current_cycle, g.cycle_start_date, g.group_type, g.default_currency, g.status, g.created_at
        FROM groups g
        LEFT JOIN members m ON m.group_id = g.id AND m.user_id = $1 AND m.is_active
        WHERE g.organizer_id = $1 OR m.id IS NOT NULL
        ORDER BY g.id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get groups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var g domain.Group
		err := rows.Scan(&g.ID, &g.OrganizerID, &g.Name, &g.JoinCode, &g.CycleDays, &g.CurrentCycle, &g.CycleStartDate, &g.GroupType, &g.DefaultCurrency, &g.Status, &g.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan group row", zap.Error(err))
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (r *Repository) Update(ctx context.Context, group *domain.Group) error {
	query := `
        UPDATE groups
        SET name = $1, cycle_days = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, group.Name, group.CycleDays, group.ID)
		if err != nil {
			zap.L().Error("failed to update group", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

var ErrCycleMoved = errors.New("group cycle advanced concurrently")

// AdvanceCycle bumps the cycle counter. The fromCycle guard is a
// compare-and-swap: if the counter moved since the caller read the group, no
// row matches and ErrCycleMoved is returned.
func (r *Repository) AdvanceCycle(ctx context.Context, groupID, fromCycle int) error {
	query := `
        UPDATE groups
        SET current_cycle = current_cycle + 1, cycle_start_date = now()
        WHERE id = $1 AND current_cycle = $2
    `
	tag, err := r.db.Exec(ctx, query, groupID, fromCycle)
	if err != nil {
		zap.L().Error("failed to advance group cycle", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCycleMoved
	}
	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Group, error) {
	var g domain.Group
	err := row.Scan(&g.ID, &g.OrganizerID, &g.Name, &g.JoinCode, &g.CycleDays, &g.CurrentCycle, &g.CycleStartDate, &g.GroupType, &g.DefaultCurrency, &g.Status, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find group", zap.Error(err))
		return nil, err
	}
	return &g, nil
}
