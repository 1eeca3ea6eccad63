package repos

import (
	"crestview/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

// List returns every booking, newest first.
func (r *BookingRepo) List() ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.Select(&out, `
	  SELECT id, name, contact_number, COALESCE(bhk_type,'') AS bhk_type,
	         COALESCE(status,'pending') AS status, COALESCE(request_id,'') AS request_id, created_at
	  FROM bookings
	  ORDER BY datetime(created_at) DESC, id
	`)
	return out, err
}

func (r *BookingRepo) Get(id string) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.Get(&b, `
	  SELECT id, name, contact_number, COALESCE(bhk_type,'') AS bhk_type,
	         COALESCE(status,'pending') AS status, COALESCE(request_id,'') AS request_id, created_at
	  FROM bookings
	  WHERE id = ?
	`, id)
	return b, err
}

// ByRequestID resolves an idempotency token to the booking it created,
// if any.
func (r *BookingRepo) ByRequestID(reqID string) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.Get(&b, `
	  SELECT id, name, contact_number, COALESCE(bhk_type,'') AS bhk_type,
	         COALESCE(status,'pending') AS status, COALESCE(request_id,'') AS request_id, created_at
	  FROM bookings
	  WHERE request_id = ?
	`, reqID)
	return b, err
}

// Create inserts a booking and returns the persisted row. request_id is
// UNIQUE, so a replayed form submission fails here and the caller falls
// back to ByRequestID.
func (r *BookingRepo) Create(b domain.Booking) (domain.Booking, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	_, err := r.db.Exec(`
	  INSERT INTO bookings(id, name, contact_number, bhk_type, status, request_id, created_at)
	  VALUES(?, ?, ?, NULLIF(?,''), ?, NULLIF(?,''), CURRENT_TIMESTAMP)
	`, b.ID, b.Name, b.ContactNumber, b.BHKType, b.Status, b.RequestID)
	if err != nil {
		return domain.Booking{}, err
	}
	return r.Get(b.ID)
}

func (r *BookingRepo) UpdateStatus(id, status string) (domain.Booking, error) {
	_, err := r.db.Exec(`UPDATE bookings SET status=? WHERE id=?`, status, id)
	if err != nil {
		return domain.Booking{}, err
	}
	return r.Get(id)
}

func (r *BookingRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM bookings WHERE id=?`, id)
	return err
}
