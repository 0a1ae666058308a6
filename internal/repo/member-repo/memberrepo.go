package memberrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
		INSERT INTO members (group_id, user_id, full_name, phone)
		VALUES ($1, NULLIF($2, 0), $3, $4)
		RETURNING id, joined_at
	`
	err := r.db.QueryRow(ctx, query, member.GroupID, member.UserID, member.FullName, member.Phone).Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		zap.L().Error("can't save member", zap.Error(err))
		return nil, err
	}
	member.IsActive = true
	return member, nil
}

func (r *Repository) FindByID(ctx context.Context, memberID int) (*domain.Member, error) {
	query := `
        SELECT id, group_id, COALESCE(user_id, 0), full_name, phone, is_active, joined_at
        FROM members
        WHERE id = $1
    `
	var m domain.Member
	err := r.db.QueryRow(ctx, query, memberID).Scan(&m.ID, &m.GroupID, &m.UserID, &m.FullName, &m.Phone, &m.IsActive, &m.JoinedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) FindByGroupAndUser(ctx context.Context, groupID, userID int) (*domain.Member, error) {
	query := `
        SELECT id, group_id, COALESCE(user_id, 0), full_name, phone, is_active, joined_at
        FROM members
        WHERE group_id = $1 AND user_id = $2
    `
	var m domain.Member
	err := r.db.QueryRow(ctx, query, groupID, userID).Scan(&m.ID, &m.GroupID, &m.UserID, &m.FullName, &m.Phone, &m.IsActive, &m.JoinedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

// FindByGroupID returns active members ordered by name; includeInactive adds
// deactivated members for historical views.
func (r *Repository) FindByGroupID(ctx context.Context, groupID int, includeInactive bool) ([]domain.Member, error) {
	query := `
        SELECT id, group_id, COALESCE(user_id, 0), full_name, phone, is_active, joined_at
        FROM members
        WHERE group_id = $1 AND (is_active OR $2)
        ORDER BY full_name, id
    `
	rows, err := r.db.Query(ctx, query, groupID, includeInactive)
	if err != nil {
		zap.L().Error("can't get members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.FullName, &m.Phone, &m.IsActive, &m.JoinedAt)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (r *Repository) Deactivate(ctx context.Context, memberID int) error {
	query := `
        UPDATE members
        SET is_active = FALSE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, memberID)
	if err != nil {
		zap.L().Error("failed to deactivate member", zap.Error(err))
		return err
	}
	return nil
}
