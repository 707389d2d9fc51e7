package activityrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/pg"
	"go.uber.org/zap"
)

const activityColumns = `id, nombre, descripcion, imagen_url, precio_boleto, total_boletos, boletos_vendidos,
		actividad_numero, fecha_inicio, fecha_fin, estado, porcentaje_vendido, sorteo_automatico,
		cantidad_numeros_suerte, numeros_premiados, created_at`

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

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var a domain.Activity
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.ImageURL, &a.TicketPrice, &a.TotalTickets,
		&a.TicketsSold, &a.ActivityNumber, &a.StartDate, &a.EndDate, &a.Status, &a.SoldPercent,
		&a.AutoDraw, &a.LuckyCount, &a.LuckyNumbers, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE id = $1
    `
	activity, err := scanActivity(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find activity", zap.Error(err))
		return nil, err
	}
	return activity, nil
}

// FindByIDForUpdate locks the activity row for the rest of the transaction.
// Ticket allocation and drawing for one activity serialize on this lock.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE id = $1
        FOR UPDATE
    `
	activity, err := scanActivity(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock activity", zap.Error(err))
		return nil, err
	}
	return activity, nil
}

func (r *Repository) FindByNumber(ctx context.Context, activityNumber string) (*domain.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE actividad_numero = $1
    `
	activity, err := scanActivity(r.db.QueryRow(ctx, query, activityNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find activity by number", zap.Error(err))
		return nil, err
	}
	return activity, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get activities", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			zap.L().Error("can't scan activity row", zap.Error(err))
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, nil
}

func (r *Repository) FindByStatuses(ctx context.Context, statuses []string) ([]domain.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE estado = ANY($1)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, statuses)
	if err != nil {
		zap.L().Error("can't get activities by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			zap.L().Error("can't scan activity row", zap.Error(err))
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, nil
}

func (r *Repository) NextNumber(ctx context.Context) (int, error) {
	query := `
        SELECT COALESCE(MAX(id), 0) + 1
        FROM activities
    `
	var next int
	if err := r.db.QueryRow(ctx, query).Scan(&next); err != nil {
		zap.L().Error("can't get next activity number", zap.Error(err))
		return 0, err
	}
	return next, nil
}

func (r *Repository) Save(ctx context.Context, activity *domain.Activity) error {
	query := `
        INSERT INTO activities (nombre, descripcion, imagen_url, precio_boleto, total_boletos, boletos_vendidos,
            actividad_numero, fecha_inicio, fecha_fin, estado, porcentaje_vendido, sorteo_automatico,
            cantidad_numeros_suerte, numeros_premiados, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, activity.Name, activity.Description, activity.ImageURL,
			activity.TicketPrice, activity.TotalTickets, activity.TicketsSold, activity.ActivityNumber,
			activity.StartDate, activity.EndDate, activity.Status, activity.SoldPercent, activity.AutoDraw,
			activity.LuckyCount, activity.LuckyNumbers, activity.CreatedAt)
		if err := row.Scan(&activity.ID); err != nil {
			zap.L().Error("can't save activity", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, activity *domain.Activity) error {
	query := `
        UPDATE activities
        SET nombre = $1, descripcion = $2, imagen_url = $3, precio_boleto = $4, total_boletos = $5,
            boletos_vendidos = $6, actividad_numero = $7, fecha_inicio = $8, fecha_fin = $9, estado = $10,
            porcentaje_vendido = $11, sorteo_automatico = $12, cantidad_numeros_suerte = $13, numeros_premiados = $14
        WHERE id = $15
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, activity.Name, activity.Description, activity.ImageURL,
			activity.TicketPrice, activity.TotalTickets, activity.TicketsSold, activity.ActivityNumber,
			activity.StartDate, activity.EndDate, activity.Status, activity.SoldPercent, activity.AutoDraw,
			activity.LuckyCount, activity.LuckyNumbers, activity.ID)
		if err != nil {
			zap.L().Error("failed to update activity", zap.Error(err))
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
        DELETE FROM activities
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("failed to delete activity", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
