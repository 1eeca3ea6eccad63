package repos

import (
	"crestview/internal/domain"

	"github.com/jmoiron/sqlx"
)

type FloorPlanRepo struct{ db *sqlx.DB }

func NewFloorPlanRepo(db *sqlx.DB) *FloorPlanRepo { return &FloorPlanRepo{db: db} }

func (r *FloorPlanRepo) List() ([]domain.FloorPlan, error) {
	var out []domain.FloorPlan
	err := r.db.Select(&out, `
	  SELECT id, title, COALESCE(size,'') AS size, COALESCE(description,'') AS description,
	         COALESCE(price,'') AS price, COALESCE(features_json,'[]') AS features_json,
	         COALESCE(amenities_json,'[]') AS amenities_json, COALESCE(image,'') AS image
	  FROM floor_plans
	  ORDER BY title
	`)
	return out, err
}

func (r *FloorPlanRepo) Get(id string) (domain.FloorPlan, error) {
	var p domain.FloorPlan
	err := r.db.Get(&p, `
	  SELECT id, title, COALESCE(size,'') AS size, COALESCE(description,'') AS description,
	         COALESCE(price,'') AS price, COALESCE(features_json,'[]') AS features_json,
	         COALESCE(amenities_json,'[]') AS amenities_json, COALESCE(image,'') AS image
	  FROM floor_plans
	  WHERE id = ?
	`, id)
	return p, err
}
