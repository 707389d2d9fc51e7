package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/pg"
	"go.uber.org/zap"
)

const orderColumns = `id, numero_pedido, activity_id, email_cliente, nombre_cliente, telefono_cliente,
		direccion_cliente, cedula_ruc, cantidad_boletos, total_pagado, metodo_pago, estado,
		fecha_limite_pago, numeros_boletos, notas_admin, created_at`

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

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.ActivityID, &o.CustomerEmail, &o.CustomerName,
		&o.CustomerPhone, &o.CustomerAddress, &o.TaxID, &o.Quantity, &o.TotalPaid, &o.PaymentMethod,
		&o.Status, &o.PaymentDeadline, &o.TicketNumbers, &o.AdminNotes, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE numero_pedido = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order by number", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        ORDER BY created_at DESC
    `
	return r.queryOrders(ctx, query)
}

func (r *Repository) FindByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE email_cliente = $1
        ORDER BY created_at DESC
    `
	return r.queryOrders(ctx, query, email)
}

// FindPaidWithNumbers returns the paid orders of an activity that already
// hold ticket numbers. The union of their numbers is the assigned set.
func (r *Repository) FindPaidWithNumbers(ctx context.Context, activityID int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE activity_id = $1 AND estado = 'pagado' AND numeros_boletos IS NOT NULL
        ORDER BY id ASC
    `
	return r.queryOrders(ctx, query, activityID)
}

// FindPaidWithoutNumbers returns paid orders whose ticket numbers were never
// assigned, used by the repair pass.
func (r *Repository) FindPaidWithoutNumbers(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE estado = 'pagado' AND (numeros_boletos IS NULL OR cardinality(numeros_boletos) = 0)
        ORDER BY id ASC
    `
	return r.queryOrders(ctx, query)
}

func (r *Repository) FindExpiredPending(ctx context.Context, deadline time.Time, limit uint32) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE estado = 'pendiente' AND fecha_limite_pago < $1
        ORDER BY fecha_limite_pago ASC
        LIMIT $2
    `
	return r.queryOrders(ctx, query, deadline, int(limit))
}

func (r *Repository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *Repository) CountByActivityID(ctx context.Context, activityID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM orders
        WHERE activity_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, activityID).Scan(&count); err != nil {
		zap.L().Error("can't count orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) NextOrderNumber(ctx context.Context) (int, error) {
	query := `
        SELECT COALESCE(MAX(id), 0) + 1
        FROM orders
    `
	var next int
	if err := r.db.QueryRow(ctx, query).Scan(&next); err != nil {
		zap.L().Error("can't get next order number", zap.Error(err))
		return 0, err
	}
	return next, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (numero_pedido, activity_id, email_cliente, nombre_cliente, telefono_cliente,
            direccion_cliente, cedula_ruc, cantidad_boletos, total_pagado, metodo_pago, estado,
            fecha_limite_pago, numeros_boletos, notas_admin, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, order.OrderNumber, order.ActivityID, order.CustomerEmail,
			order.CustomerName, order.CustomerPhone, order.CustomerAddress, order.TaxID, order.Quantity,
			order.TotalPaid, order.PaymentMethod, order.Status, order.PaymentDeadline, order.TicketNumbers,
			order.AdminNotes, order.CreatedAt)
		if err := row.Scan(&order.ID); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET email_cliente = $1, nombre_cliente = $2, telefono_cliente = $3, direccion_cliente = $4,
            cedula_ruc = $5, estado = $6, numeros_boletos = $7, notas_admin = $8
        WHERE id = $9
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.CustomerEmail, order.CustomerName, order.CustomerPhone,
			order.CustomerAddress, order.TaxID, order.Status, order.TicketNumbers, order.AdminNotes, order.ID)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
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
        DELETE FROM orders
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("failed to delete order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
