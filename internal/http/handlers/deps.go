package handlers

import (
	"time"

	"crestview/internal/config"
	"crestview/internal/repos"
	"crestview/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	SiteHandler      *SiteHandler
	BookingHandler   *BookingHandler
	InventoryHandler *InventoryHandler
	UnitHandler      *UnitHandler
	AdminHandler     *AdminHandler
	FloorPlanHandler *FloorPlanHandler
	AuthHandler      *AuthHandler
	Auth             *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	unitRepo := repos.NewUnitRepo(db)
	bookingRepo := repos.NewBookingRepo(db)
	adminRepo := repos.NewAdminRepo(db)
	invRepo := repos.NewInventoryRepo(db)
	planRepo := repos.NewFloorPlanRepo(db)

	authSvc := services.NewAuthService(adminRepo, time.Duration(cfg.SessionTTLHrs)*time.Hour)
	unitSvc := services.NewUnitService(unitRepo)
	bookingSvc := services.NewBookingService(bookingRepo)
	invSvc := services.NewInventoryService(invRepo, unitRepo)
	planSvc := services.NewFloorPlanService(planRepo)

	return &Deps{
		SiteHandler:      &SiteHandler{Plans: planSvc, WhatsApp: cfg.WhatsAppNumber},
		BookingHandler:   &BookingHandler{Bookings: bookingSvc, WhatsApp: cfg.WhatsAppNumber},
		InventoryHandler: &InventoryHandler{Units: unitSvc, Inv: invSvc, Plans: planSvc, Auth: authSvc},
		UnitHandler:      &UnitHandler{Units: unitSvc},
		AdminHandler:     &AdminHandler{Bookings: bookingSvc},
		FloorPlanHandler: &FloorPlanHandler{Plans: planSvc},
		AuthHandler:      &AuthHandler{Auth: authSvc},
		Auth:             authSvc,
	}
}
