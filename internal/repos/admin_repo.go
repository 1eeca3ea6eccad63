package repos

import (
	"time"

	"crestview/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AdminRepo struct{ DB *sqlx.DB }

func NewAdminRepo(db *sqlx.DB) *AdminRepo { return &AdminRepo{DB: db} }

func (r *AdminRepo) ByEmail(email string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.DB.Get(&a, `SELECT id,email,name,password_hash FROM admins WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepo) ByID(id string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.DB.Get(&a, `SELECT id,email,name,password_hash FROM admins WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// BindSession ties the sid cookie to an admin with an absolute expiry.
func (r *AdminRepo) BindSession(sid, adminID string, ttl time.Duration) error {
	exp := time.Now().UTC().Add(ttl).Format(time.RFC3339)
	_, err := r.DB.Exec(`INSERT INTO admin_sessions(id,admin_id,expires_at,last_seen)
	                      VALUES(?,?,?,CURRENT_TIMESTAMP)
	                      ON CONFLICT(id) DO UPDATE SET admin_id=excluded.admin_id,expires_at=excluded.expires_at,last_seen=CURRENT_TIMESTAMP`,
		sid, adminID, exp)
	return err
}

// SessionAdmin resolves a live session to its admin. Expired sessions
// do not resolve.
func (r *AdminRepo) SessionAdmin(sid string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.DB.Get(&a, `
	  SELECT a.id, a.email, a.name, a.password_hash
	  FROM admin_sessions s
	  JOIN admins a ON a.id = s.admin_id
	  WHERE s.id = ? AND s.expires_at > ?`,
		sid, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE admin_sessions SET admin_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
