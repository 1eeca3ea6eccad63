package services

import (
	"crestview/internal/domain"
	"crestview/internal/repos"
	"crestview/internal/validate"
)

type UnitService struct {
	Units *repos.UnitRepo
}

func NewUnitService(units *repos.UnitRepo) *UnitService {
	return &UnitService{Units: units}
}

func (s *UnitService) List() ([]domain.Unit, error) {
	return s.Units.List()
}

func (s *UnitService) Get(id string) (domain.Unit, error) {
	return s.Units.Get(id)
}

// Create persists an already-validated unit form.
func (s *UnitService) Create(p validate.ParsedUnit) (domain.Unit, error) {
	return s.Units.Create(domain.Unit{
		Floor:      p.Floor,
		UnitNumber: p.UnitNumber,
		BHKType:    p.BHKType,
		SizeSqft:   p.SizeSqft,
		Price:      p.Price,
		Status:     p.Status,
	})
}

// Update overwrites the editable fields of an existing unit and stamps
// updated_at.
func (s *UnitService) Update(id string, p validate.ParsedUnit) (domain.Unit, error) {
	return s.Units.Update(id, domain.Unit{
		Floor:      p.Floor,
		UnitNumber: p.UnitNumber,
		BHKType:    p.BHKType,
		SizeSqft:   p.SizeSqft,
		Price:      p.Price,
		Status:     p.Status,
	})
}

func (s *UnitService) UpdateStatus(id, status string) (domain.Unit, error) {
	return s.Units.UpdateStatus(id, status)
}

func (s *UnitService) Delete(id string) error {
	return s.Units.Delete(id)
}
