package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StoreProfile is the single per-deployment store record. The store name's
// initials seed the bill-number prefix.
type StoreProfile struct {
	ID        string      `db:"id" json:"id"`
	StoreName string      `db:"store_name" json:"storeName"`
	LogoURL   *string     `db:"logo_url" json:"logoUrl"`
	Address   string      `db:"address" json:"address"`
	Terms     string      `db:"terms" json:"terms"`
	Contacts  ContactList `db:"contacts" json:"contacts"`
	UpdatedAt time.Time   `db:"updated_at" json:"updatedAt"`
}

type Contact struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// ContactList is stored as a JSONB column.
type ContactList []Contact

func (c ContactList) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

func (c *ContactList) Scan(src interface{}) error {
	if src == nil {
		*c = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return errors.New("contacts: unsupported scan type")
	}
}
