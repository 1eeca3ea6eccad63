package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (units/inventory/floor plans)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure an admin exists (idempotent; safe to run every start)
	if err := seedAdmins(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Sellable units shown on the inventory page
CREATE TABLE IF NOT EXISTS units(
  id TEXT PRIMARY KEY,
  floor INTEGER NOT NULL CHECK (floor >= 1),
  unit_number TEXT NOT NULL,
  bhk_type TEXT NOT NULL CHECK (bhk_type IN ('1 BHK','2 BHK','3 BHK','4 BHK')),
  size_sqft INTEGER NOT NULL CHECK (size_sqft >= 1),
  price NUMERIC NOT NULL CHECK (price >= 0),
  status TEXT NOT NULL DEFAULT 'Available' CHECK (status IN ('Available','Booked','Sold')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_units_floor  ON units(floor, unit_number);
CREATE INDEX IF NOT EXISTS idx_units_status ON units(status);

-- Visit-booking leads from the public form
CREATE TABLE IF NOT EXISTS bookings(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  contact_number TEXT NOT NULL,
  bhk_type TEXT,
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','confirmed','cancelled')),
  request_id TEXT UNIQUE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at);
CREATE INDEX IF NOT EXISTS idx_bookings_status     ON bookings(status);

-- Read-only sales catalog (tower stock by floor)
CREATE TABLE IF NOT EXISTS inventory(
  id TEXT PRIMARY KEY,
  tower TEXT NOT NULL,
  floor INTEGER NOT NULL,
  bhk_type TEXT NOT NULL,
  size_sqft INTEGER NOT NULL,
  price NUMERIC NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_inventory_floor ON inventory(floor);
CREATE INDEX IF NOT EXISTS idx_inventory_bhk   ON inventory(bhk_type);

-- Floor plans backing the detail modal
CREATE TABLE IF NOT EXISTS floor_plans(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  size TEXT,
  description TEXT,
  price TEXT,
  features_json TEXT,
  amenities_json TEXT,
  image TEXT
);

-- Admins & their server-issued sessions
CREATE TABLE IF NOT EXISTS admins(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_admins_email ON admins(LOWER(email));

CREATE TABLE IF NOT EXISTS admin_sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  admin_id TEXT NULL REFERENCES admins(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  expires_at TEXT,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_admin_sessions_admin ON admin_sessions(admin_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM units`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo units/inventory/floor plans")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO units(id,floor,unit_number,bhk_type,size_sqft,price,status) VALUES
	  ('unit-101','1','101','2 BHK',650,4500000,'Available'),
	  ('unit-102','1','102','3 BHK',940,6700000,'Booked'),
	  ('unit-201','2','201','2 BHK',650,4600000,'Available'),
	  ('unit-202','2','202','1 BHK',480,3200000,'Sold'),
	  ('unit-301','3','301','4 BHK',1260,9800000,'Available')`)

	tx.MustExec(`INSERT INTO inventory(id,tower,floor,bhk_type,size_sqft,price) VALUES
	  ('inv-a1','A',1,'2 BHK',650,4500000),
	  ('inv-a2','A',2,'2 BHK',650,4600000),
	  ('inv-a3','A',3,'4 BHK',1260,9800000),
	  ('inv-b1','B',1,'3 BHK',940,6700000),
	  ('inv-b2','B',2,'1 BHK',480,3200000)`)

	tx.MustExec(`INSERT INTO floor_plans(id,title,size,description,price,features_json,amenities_json,image) VALUES
	  ('plan-bungalow','Bungalow Plan','',
	   'Ground floor with a wide entrance, grand living area, dining space, modular kitchen, guest bedroom and utility zone. First floor with master suite, two bedrooms, family lounge and terrace access.',
	   '',
	   '["Wide Entrance","Grand Living Area","Modular Kitchen","Master Bedroom Suite","Family Lounge","Terrace Access"]',
	   '["Landscaped Gardens","Peaceful Environment","Privacy & Comfort","Multiple Balconies"]',
	   'plans/bungalow.png'),
	  ('plan-site','Site Plan','',
	   'Complete layout overview: building positions, green zones, jogging tracks, amenity spaces, roads and open areas.',
	   '',
	   '["Building Positions","Green Zones","Jogging Tracks","Amenity Spaces","Road Network","Open Areas"]',
	   '["Smart Design","Internal Connectivity","Green Spaces","Recreation Areas"]',
	   'plans/site.png'),
	  ('plan-parking','Parking Plan','',
	   'Covered slots, separate visitor parking, designated entry/exit routes and clearly marked zones.',
	   '',
	   '["Covered Parking Slots","Visitor Parking","Entry/Exit Routes","Clearly Marked Zones"]',
	   '["Convenience","Smooth Traffic Flow","Security","Easy Access"]',
	   'plans/parking.png')`)

	return tx.Commit()
}

// seedAdmins ensures one back-office admin exists (idempotent).
// Passwords are stored as bcrypt hashes only.
func seedAdmins(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("Crestv1ew!"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO admins(id,email,name,password_hash)
		VALUES('adm-sales','sales@crestview.test','Sales Admin',?)
		ON CONFLICT(email) DO NOTHING
	`, string(h))
	return err
}
