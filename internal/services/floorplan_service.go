package services

import (
	"encoding/json"

	"crestview/internal/domain"
	"crestview/internal/repos"
)

type FloorPlanService struct {
	Plans *repos.FloorPlanRepo
}

func NewFloorPlanService(plans *repos.FloorPlanRepo) *FloorPlanService {
	return &FloorPlanService{Plans: plans}
}

// PlanView is a FloorPlan with the JSON arrays unpacked for templates.
type PlanView struct {
	domain.FloorPlan
	Features  []string
	Amenities []string
}

func (s *FloorPlanService) List() ([]PlanView, error) {
	plans, err := s.Plans.List()
	if err != nil {
		return nil, err
	}
	out := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		out = append(out, expand(p))
	}
	return out, nil
}

func (s *FloorPlanService) Get(id string) (PlanView, error) {
	p, err := s.Plans.Get(id)
	if err != nil {
		return PlanView{}, err
	}
	return expand(p), nil
}

func expand(p domain.FloorPlan) PlanView {
	v := PlanView{FloorPlan: p}
	// Malformed stored arrays degrade to empty lists, not errors.
	_ = json.Unmarshal([]byte(p.FeaturesJSON), &v.Features)
	_ = json.Unmarshal([]byte(p.AmenitiesJSON), &v.Amenities)
	return v
}
