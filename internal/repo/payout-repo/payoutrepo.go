package payoutrepo

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

// CreatePayout inserts the header row. The unique index on
// (group_id, cycle_number) makes a duplicate finalization fail here.
func (r *Repository) CreatePayout(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
		INSERT INTO payouts (group_id, cycle_number, payout_date, fee_total, item_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, payout.GroupID, payout.CycleNumber, payout.PayoutDate, payout.FeeTotal, payout.ItemCount).Scan(&payout.ID)
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) CreateItems(ctx context.Context, payoutID int, items []domain.PayoutItem) error {
	query := `
		INSERT INTO payout_items (payout_id, member_id, member_name, currency, total_saved, organizer_fee, net_payout, days_contributed, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	for i := range items {
		items[i].PayoutID = payoutID
		err := r.db.QueryRow(ctx, query,
			payoutID, items[i].MemberID, items[i].MemberName, items[i].Currency,
			items[i].TotalSaved, items[i].OrganizerFee, items[i].NetPayout,
			items[i].DaysContributed, items[i].Status,
		).Scan(&items[i].ID)
		if err != nil {
			zap.L().Error("can't save payout item", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, payoutID int) (*domain.Payout, error) {
	query := `
        SELECT id, group_id, cycle_number, payout_date, fee_total, item_count
        FROM payouts
        WHERE id = $1
    `
	var p domain.Payout
	err := r.db.QueryRow(ctx, query, payoutID).Scan(&p.ID, &p.GroupID, &p.CycleNumber, &p.PayoutDate, &p.FeeTotal, &p.ItemCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payout", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByGroupAndCycle(ctx context.Context, groupID, cycleNumber int) (*domain.Payout, error) {
	query := `
        SELECT id, group_id, cycle_number, payout_date, fee_total, item_count
        FROM payouts
        WHERE group_id = $1 AND cycle_number = $2
    `
	var p domain.Payout
	err := r.db.QueryRow(ctx, query, groupID, cycleNumber).Scan(&p.ID, &p.GroupID, &p.CycleNumber, &p.PayoutDate, &p.FeeTotal, &p.ItemCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payout", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByGroupID(ctx context.Context, groupID int) ([]domain.Payout, error) {
	query := `
        SELECT id, group_id, cycle_number, payout_date, fee_total, item_count
        FROM payouts
        WHERE group_id = $1
        ORDER BY cycle_number DESC
    `
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("can't get payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		err := rows.Scan(&p.ID, &p.GroupID, &p.CycleNumber, &p.PayoutDate, &p.FeeTotal, &p.ItemCount)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}

func (r *Repository) FindItemsByPayoutID(ctx context.Context, payoutID int) ([]domain.PayoutItem, error) {
	query := `
        SELECT id, payout_id, member_id, member_name, currency, total_saved, organizer_fee, net_payout, days_contributed, status
        FROM payout_items
        WHERE payout_id = $1
        ORDER BY member_name, currency
    `
	rows, err := r.db.Query(ctx, query, payoutID)
	if err != nil {
		zap.L().Error("can't get payout items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.PayoutItem
	for rows.Next() {
		var it domain.PayoutItem
		err := rows.Scan(&it.ID, &it.PayoutID, &it.MemberID, &it.MemberName, &it.Currency, &it.TotalSaved, &it.OrganizerFee, &it.NetPayout, &it.DaysContributed, &it.Status)
		if err != nil {
			zap.L().Error("can't scan payout item row", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *Repository) FindItemByID(ctx context.Context, itemID int) (*domain.PayoutItem, error) {
	query := `
        SELECT id, payout_id, member_id, member_name, currency, total_saved, organizer_fee, net_payout, days_contributed, status
        FROM payout_items
        WHERE id = $1
    `
	var it domain.PayoutItem
	err := r.db.QueryRow(ctx, query, itemID).Scan(&it.ID, &it.PayoutID, &it.MemberID, &it.MemberName, &it.Currency, &it.TotalSaved, &it.OrganizerFee, &it.NetPayout, &it.DaysContributed, &it.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payout item", zap.Error(err))
		return nil, err
	}
	return &it, nil
}

func (r *Repository) UpdateItemStatus(ctx context.Context, itemID int, status string) error {
	query := `
        UPDATE payout_items
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, itemID)
	if err != nil {
		zap.L().Error("failed to update payout item status", zap.Error(err))
		return err
	}
	return nil
}
