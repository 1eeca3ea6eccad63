package repos

import (
	"crestview/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UnitRepo struct{ db *sqlx.DB }

func NewUnitRepo(db *sqlx.DB) *UnitRepo { return &UnitRepo{db: db} }

// List returns every unit, floor ascending then unit number ascending.
func (r *UnitRepo) List() ([]domain.Unit, error) {
	var out []domain.Unit
	err := r.db.Select(&out, `
	  SELECT id, floor, unit_number, bhk_type, size_sqft, price, status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM units
	  ORDER BY floor ASC, unit_number ASC
	`)
	return out, err
}

func (r *UnitRepo) Get(id string) (domain.Unit, error) {
	var u domain.Unit
	err := r.db.Get(&u, `
	  SELECT id, floor, unit_number, bhk_type, size_sqft, price, status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM units
	  WHERE id = ?
	`, id)
	return u, err
}

// Create inserts a unit and returns the persisted row including the
// generated id and timestamps.
func (r *UnitRepo) Create(u domain.Unit) (domain.Unit, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := r.db.Exec(`
	  INSERT INTO units(id, floor, unit_number, bhk_type, size_sqft, price, status, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, u.ID, u.Floor, u.UnitNumber, u.BHKType, u.SizeSqft, u.Price, u.Status)
	if err != nil {
		return domain.Unit{}, err
	}
	return r.Get(u.ID)
}

// Update merges the provided fields, stamps updated_at and returns the
// persisted row.
func (r *UnitRepo) Update(id string, u domain.Unit) (domain.Unit, error) {
	_, err := r.db.Exec(`
	  UPDATE units
	  SET floor=?, unit_number=?, bhk_type=?, size_sqft=?, price=?, status=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, u.Floor, u.UnitNumber, u.BHKType, u.SizeSqft, u.Price, u.Status, id)
	if err != nil {
		return domain.Unit{}, err
	}
	return r.Get(id)
}

func (r *UnitRepo) UpdateStatus(id, status string) (domain.Unit, error) {
	_, err := r.db.Exec(`UPDATE units SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, status, id)
	if err != nil {
		return domain.Unit{}, err
	}
	return r.Get(id)
}

// Delete removes a unit. A missing id is whatever SQLite reports; this
// layer does not mask it.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM units WHERE id=?`, id)
	return err
}
