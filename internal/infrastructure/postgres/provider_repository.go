package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación de ProviderRepository sobre PostgreSQL (usable con pool o tx).
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create persiste un proveedor nuevo.
func (r *ProviderRepo) Create(ctx context.Context, p *entity.Provider) error {
	query := `
		INSERT INTO providers (id, name, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Phone, p.Email, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProviderRepo) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	var p entity.Provider
	err := r.q.QueryRow(ctx, `
		SELECT id, name, phone, email, status, created_at, updated_at
		FROM providers WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Phone, &p.Email, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

// List lista proveedores, opcionalmente por estado.
func (r *ProviderRepo) List(ctx context.Context, status string) ([]*entity.Provider, error) {
	query := `SELECT id, name, phone, email, status, created_at, updated_at FROM providers`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los datos del proveedor.
func (r *ProviderRepo) Update(ctx context.Context, p *entity.Provider) error {
	_, err := r.q.Exec(ctx, `
		UPDATE providers SET name = $2, phone = $3, email = $4, updated_at = $5
		WHERE id = $1`,
		p.ID, p.Name, p.Phone, p.Email, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	return nil
}

// UpdateStatus activa o inactiva un proveedor.
func (r *ProviderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE providers SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update provider status: %w", err)
	}
	return nil
}
