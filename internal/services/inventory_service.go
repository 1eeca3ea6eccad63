package services

import (
	"crestview/internal/domain"
	"crestview/internal/repos"
)

type InventoryService struct {
	Inv   *repos.InventoryRepo
	Units *repos.UnitRepo
}

func NewInventoryService(inv *repos.InventoryRepo, units *repos.UnitRepo) *InventoryService {
	return &InventoryService{Inv: inv, Units: units}
}

func (s *InventoryService) Catalog(bhk string) ([]domain.InventoryItem, error) {
	if bhk == "" {
		return s.Inv.ListAll()
	}
	return s.Inv.ListByBHK(bhk)
}

// Availability counts unit statuses for the availability API. The
// counts come from a fresh full fetch, optionally narrowed to one BHK
// type, never from a cache.
func (s *InventoryService) Availability(bhk string) (domain.AvailabilitySummary, error) {
	units, err := s.Units.List()
	if err != nil {
		return domain.AvailabilitySummary{}, err
	}
	var sum domain.AvailabilitySummary
	for _, u := range units {
		if bhk != "" && u.BHKType != bhk {
			continue
		}
		sum.Total++
		switch u.Status {
		case domain.UnitAvailable:
			sum.Available++
		case domain.UnitBooked:
			sum.Booked++
		case domain.UnitSold:
			sum.Sold++
		}
	}
	return sum, nil
}
