package services

import (
	"bytes"
	"encoding/csv"
	"errors"

	"crestview/internal/domain"
	"crestview/internal/repos"
	"crestview/internal/validate"
)

var ErrBadStatus = errors.New("unknown booking status")

type BookingService struct {
	Bookings *repos.BookingRepo
}

func NewBookingService(b *repos.BookingRepo) *BookingService {
	return &BookingService{Bookings: b}
}

// Create persists a validated visit booking. requestID is the form's
// idempotency token: a replayed submission returns the row the first
// submission created instead of inserting a second lead.
func (s *BookingService) Create(p validate.ParsedBooking, requestID string) (domain.Booking, error) {
	if requestID != "" {
		if existing, err := s.Bookings.ByRequestID(requestID); err == nil {
			return existing, nil
		}
	}
	b, err := s.Bookings.Create(domain.Booking{
		Name:          p.Name,
		ContactNumber: p.Contact,
		BHKType:       p.BHKType,
		Status:        domain.BookingPending,
		RequestID:     requestID,
	})
	if err != nil && requestID != "" {
		// Lost the race against a duplicate submit: the UNIQUE
		// request_id rejected us, the first insert won.
		if existing, rerr := s.Bookings.ByRequestID(requestID); rerr == nil {
			return existing, nil
		}
	}
	return b, err
}

func (s *BookingService) List() ([]domain.Booking, error) {
	return s.Bookings.List()
}

func (s *BookingService) UpdateStatus(id, status string) (domain.Booking, error) {
	st, ok := validate.BookingStatus(status)
	if !ok {
		return domain.Booking{}, ErrBadStatus
	}
	return s.Bookings.UpdateStatus(id, st)
}

func (s *BookingService) Delete(id string) error {
	return s.Bookings.Delete(id)
}

// FilterByStatus narrows an already-fetched collection; "all" (or
// empty) passes everything through. Counts are never derived from the
// filtered slice.
func FilterByStatus(bookings []domain.Booking, status string) []domain.Booking {
	if status == "" || status == "all" {
		return bookings
	}
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// BookingStats are the dashboard counters, computed from the full
// unfiltered collection.
type BookingStats struct {
	Total     int
	Pending   int
	Confirmed int
	Cancelled int
}

func Stats(bookings []domain.Booking) BookingStats {
	st := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingConfirmed:
			st.Confirmed++
		case domain.BookingCancelled:
			st.Cancelled++
		default:
			st.Pending++
		}
	}
	return st
}

// ExportCSV serializes the slice it is handed (the filtered view, not
// the whole table) with a fixed column order. Fields are RFC 4180
// quoted, so names containing commas survive a round trip.
func ExportCSV(bookings []domain.Booking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Name", "Contact", "BHK Type", "Status", "Date"}); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		bhk := b.BHKType
		if bhk == "" {
			bhk = "N/A"
		}
		status := b.Status
		if status == "" {
			status = domain.BookingPending
		}
		if err := w.Write([]string{b.Name, b.ContactNumber, bhk, status, exportDate(b.CreatedAt)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportDate keeps only the date portion of a stored timestamp.
func exportDate(createdAt string) string {
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	return createdAt
}
