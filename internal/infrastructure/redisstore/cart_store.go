package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lacigarreria/tienda-api/internal/application/cart"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

var (
	_ cart.Store          = (*CartStore)(nil)
	_ cart.SelectionStore = (*CartStore)(nil)
)

// Los carritos abandonados expiran solos; la selección de dirección es aún
// más corta porque solo vive entre elegir y confirmar.
const (
	cartTTL      = 7 * 24 * time.Hour
	selectionTTL = 2 * time.Hour
)

// CartStore guarda el carrito y la dirección seleccionada de cada usuario
// en Redis, una clave JSON por usuario.
type CartStore struct {
	client *redis.Client
}

// NewCartStore construye el store sobre el cliente de Redis.
func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

func cartKey(userID string) string      { return "carrito:" + userID }
func selectionKey(userID string) string { return "direccion:" + userID }

// Get lee el carrito. Una clave ausente es un carrito vacío.
func (s *CartStore) Get(ctx context.Context, userID string) ([]entity.CartEntry, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer carrito: %w", err)
	}
	var entries []entity.CartEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decodificar carrito: %w", err)
	}
	return entries, nil
}

// Set guarda el carrito completo. Un carrito vacío elimina la clave.
func (s *CartStore) Set(ctx context.Context, userID string, entries []entity.CartEntry) error {
	if len(entries) == 0 {
		return s.Clear(ctx, userID)
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("codificar carrito: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(userID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("guardar carrito: %w", err)
	}
	return nil
}

// Clear elimina el carrito. Borrar una clave inexistente no es error.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("vaciar carrito: %w", err)
	}
	return nil
}

// SetSelection guarda la dirección elegida para el próximo checkout.
func (s *CartStore) SetSelection(ctx context.Context, userID, addressID string) error {
	if err := s.client.Set(ctx, selectionKey(userID), addressID, selectionTTL).Err(); err != nil {
		return fmt.Errorf("guardar selección de dirección: %w", err)
	}
	return nil
}

// GetSelection lee la dirección seleccionada; vacío si no hay.
func (s *CartStore) GetSelection(ctx context.Context, userID string) (string, error) {
	val, err := s.client.Get(ctx, selectionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("leer selección de dirección: %w", err)
	}
	return val, nil
}

// ClearSelection descarta la dirección seleccionada.
func (s *CartStore) ClearSelection(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, selectionKey(userID)).Err(); err != nil {
		return fmt.Errorf("limpiar selección de dirección: %w", err)
	}
	return nil
}
