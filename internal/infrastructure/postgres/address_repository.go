package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación de AddressRepository sobre PostgreSQL (usable con pool o tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador de persistencia para direcciones. Pasar pool o tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// Create persiste una dirección nueva.
func (r *AddressRepo) Create(ctx context.Context, a *entity.Address) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO addresses (id, user_id, label, line, city, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, a.Label, a.Line, a.City, a.Phone, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// GetByID obtiene una dirección por ID.
func (r *AddressRepo) GetByID(ctx context.Context, id string) (*entity.Address, error) {
	var a entity.Address
	err := r.q.QueryRow(ctx, `
		SELECT id, user_id, label, line, city, phone, created_at
		FROM addresses WHERE id = $1`, id).Scan(
		&a.ID, &a.UserID, &a.Label, &a.Line, &a.City, &a.Phone, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &a, nil
}

// ListByUser lista las direcciones de un usuario.
func (r *AddressRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Address, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, label, line, city, phone, created_at
		FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.Line, &a.City, &a.Phone, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina una dirección del usuario.
func (r *AddressRepo) Delete(ctx context.Context, id string, userID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM addresses WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}
