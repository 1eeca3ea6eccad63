package repos

import (
	"crestview/internal/domain"

	"github.com/jmoiron/sqlx"
)

type InventoryRepo struct{ db *sqlx.DB }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{db: db} }

// ListAll returns the whole sales catalog ordered by floor.
func (r *InventoryRepo) ListAll() ([]domain.InventoryItem, error) {
	var rows []domain.InventoryItem
	err := r.db.Select(&rows, `
	  SELECT id, tower, floor, bhk_type, size_sqft, price
	  FROM inventory
	  ORDER BY floor ASC, tower ASC
	`)
	return rows, err
}

// ListByBHK narrows the catalog to one BHK type, still floor ordered.
func (r *InventoryRepo) ListByBHK(bhk string) ([]domain.InventoryItem, error) {
	var rows []domain.InventoryItem
	err := r.db.Select(&rows, `
	  SELECT id, tower, floor, bhk_type, size_sqft, price
	  FROM inventory
	  WHERE bhk_type = ?
	  ORDER BY floor ASC, tower ASC
	`, bhk)
	return rows, err
}
