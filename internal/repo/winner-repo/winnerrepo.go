package winnerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/pg"
	"go.uber.org/zap"
)

const winnerColumns = `id, activity_id, order_id, numero_ganador, es_numero_premiado, fecha_sorteo,
		anunciado_en_instagram, notas, created_at`

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

func scanWinner(row pgx.Row) (*domain.Winner, error) {
	var w domain.Winner
	err := row.Scan(&w.ID, &w.ActivityID, &w.OrderID, &w.WinningNumber, &w.IsLuckyNumber,
		&w.DrawDate, &w.Announced, &w.Notes, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Winner, error) {
	query := `
        SELECT ` + winnerColumns + `
        FROM winners
        WHERE id = $1
    `
	winner, err := scanWinner(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find winner", zap.Error(err))
		return nil, err
	}
	return winner, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Winner, error) {
	query := `
        SELECT ` + winnerColumns + `
        FROM winners
        ORDER BY fecha_sorteo DESC
    `
	return r.queryWinners(ctx, query)
}

func (r *Repository) FindAnnounced(ctx context.Context) ([]domain.Winner, error) {
	query := `
        SELECT ` + winnerColumns + `
        FROM winners
        WHERE anunciado_en_instagram = TRUE
        ORDER BY fecha_sorteo DESC
    `
	return r.queryWinners(ctx, query)
}

func (r *Repository) FindByActivityID(ctx context.Context, activityID int) ([]domain.Winner, error) {
	query := `
        SELECT ` + winnerColumns + `
        FROM winners
        WHERE activity_id = $1
        ORDER BY fecha_sorteo DESC
    `
	return r.queryWinners(ctx, query, activityID)
}

func (r *Repository) queryWinners(ctx context.Context, query string, args ...any) ([]domain.Winner, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get winners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var winners []domain.Winner
	for rows.Next() {
		winner, err := scanWinner(rows)
		if err != nil {
			zap.L().Error("can't scan winner row", zap.Error(err))
			return nil, err
		}
		winners = append(winners, *winner)
	}
	return winners, nil
}

// FindMainWinner returns the grand-prize winner of the activity, nil when the
// draw has not happened yet.
func (r *Repository) FindMainWinner(ctx context.Context, activityID int) (*domain.Winner, error) {
	query := `
        SELECT ` + winnerColumns + `
        FROM winners
        WHERE activity_id = $1 AND es_numero_premiado = FALSE
    `
	winner, err := scanWinner(r.db.QueryRow(ctx, query, activityID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find main winner", zap.Error(err))
		return nil, err
	}
	return winner, nil
}

func (r *Repository) FindByActivityAndNumber(ctx context.Context, activityID int, number string) (*domain.Winner, error) {
	query := `
        SELECT ` + winnerColumns + `
        FROM winners
        WHERE activity_id = $1 AND numero_ganador = $2
    `
	winner, err := scanWinner(r.db.QueryRow(ctx, query, activityID, number))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find winner by number", zap.Error(err))
		return nil, err
	}
	return winner, nil
}

func (r *Repository) CountByActivityID(ctx context.Context, activityID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM winners
        WHERE activity_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, activityID).Scan(&count); err != nil {
		zap.L().Error("can't count winners", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Save(ctx context.Context, winner *domain.Winner) error {
	query := `
        INSERT INTO winners (activity_id, order_id, numero_ganador, es_numero_premiado, fecha_sorteo,
            anunciado_en_instagram, notas, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, winner.ActivityID, winner.OrderID, winner.WinningNumber,
			winner.IsLuckyNumber, winner.DrawDate, winner.Announced, winner.Notes, winner.CreatedAt)
		if err := row.Scan(&winner.ID); err != nil {
			zap.L().Error("can't save winner", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, winner *domain.Winner) error {
	query := `
        UPDATE winners
        SET order_id = $1, numero_ganador = $2, es_numero_premiado = $3, anunciado_en_instagram = $4, notas = $5
        WHERE id = $6
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, winner.OrderID, winner.WinningNumber, winner.IsLuckyNumber,
			winner.Announced, winner.Notes, winner.ID)
		if err != nil {
			zap.L().Error("failed to update winner", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM winners
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("failed to delete winner", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
