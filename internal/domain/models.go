package domain

// Unit statuses as shown on the inventory table.
const (
	UnitAvailable = "Available"
	UnitBooked    = "Booked"
	UnitSold      = "Sold"
)

// Booking statuses managed from the dashboard.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Unit struct {
	ID         string  `db:"id"`
	Floor      int     `db:"floor"`
	UnitNumber string  `db:"unit_number"`
	BHKType    string  `db:"bhk_type"` // "1 BHK".."4 BHK"
	SizeSqft   int     `db:"size_sqft"`
	Price      float64 `db:"price"`
	Status     string  `db:"status"` // Available | Booked | Sold
	CreatedAt  string  `db:"created_at"`
	UpdatedAt  string  `db:"updated_at"`
}

type Booking struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	ContactNumber string `db:"contact_number"`
	BHKType       string `db:"bhk_type"` // empty when the visitor skipped it
	Status        string `db:"status"`   // pending | confirmed | cancelled
	RequestID     string `db:"request_id"`
	CreatedAt     string `db:"created_at"`
}

// InventoryItem is a row of the read-only sales catalog (tower stock by
// floor), distinct from the sellable units table.
type InventoryItem struct {
	ID       string  `db:"id"`
	Tower    string  `db:"tower"`
	Floor    int     `db:"floor"`
	BHKType  string  `db:"bhk_type"`
	SizeSqft int     `db:"size_sqft"`
	Price    float64 `db:"price"`
}

// FloorPlan backs the plan-detail modal. Features and amenities are
// stored as JSON string arrays.
type FloorPlan struct {
	ID            string `db:"id"`
	Title         string `db:"title"`
	Size          string `db:"size"`
	Description   string `db:"description"`
	Price         string `db:"price"`
	FeaturesJSON  string `db:"features_json"`
	AmenitiesJSON string `db:"amenities_json"`
	Image         string `db:"image"`
}

// AvailabilitySummary is derived per request from the full unit slice,
// never cached.
type AvailabilitySummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
	Sold      int `json:"sold"`
}
