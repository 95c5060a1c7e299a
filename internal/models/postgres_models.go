package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, j)
}

// User model - PostgreSQL (strict, consistent data)
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone            string     `json:"phone"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	Role             string     `gorm:"default:customer" json:"role"` // customer, vendor, admin
	Status           string     `gorm:"default:active" json:"status"` // active, inactive, suspended
	DefaultAddressID *uuid.UUID `gorm:"type:uuid" json:"default_address_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Address model - PostgreSQL (user shipping/billing addresses)
type Address struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AddressLine1 string    `gorm:"not null" json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	City         string    `gorm:"not null" json:"city"`
	State        string    `gorm:"not null" json:"state"`
	PostalCode   string    `gorm:"not null" json:"postal_code"`
	Country      string    `gorm:"not null;default:India" json:"country"`
	IsDefault    bool      `gorm:"default:false" json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Order model - PostgreSQL (critical transactional data)
type Order struct {
	ID                uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber       string      `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID            uuid.UUID   `gorm:"type:uuid;not null" json:"user_id"`
	User              User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ShippingAddressID uuid.UUID   `gorm:"type:uuid;not null" json:"shipping_address"`
	ShippingAddress   Address     `gorm:"foreignKey:ShippingAddressID" json:"shipping_address_details,omitempty"`
	BillingAddressID  uuid.UUID   `gorm:"type:uuid;not null" json:"billing_address"`
	BillingAddress    Address     `gorm:"foreignKey:BillingAddressID" json:"billing_address_details,omitempty"`
	Status            string      `gorm:"default:pending" json:"status"` // pending, processing, shipped, delivered, cancelled, refunded
	PaymentStatus     string      `gorm:"default:pending" json:"payment_status"`
	PaymentMethod     string      `gorm:"not null" json:"payment_method"` // cod, card, upi
	Subtotal          float64     `gorm:"not null" json:"subtotal"`
	ShippingCost      float64     `gorm:"default:0" json:"shipping_cost"`
	Tax               float64     `gorm:"default:0" json:"tax"`
	Total             float64     `gorm:"not null" json:"total"`
	TrackingNumber    *string     `json:"tracking_number"`
	Items             []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// OrderItem model - PostgreSQL (one purchased line per product)
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null" json:"order_id"`
	ProductID   string    `gorm:"not null" json:"product"` // MongoDB catalog reference
	ProductName string    `json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Price       float64   `gorm:"not null" json:"price"`
	Total       float64   `gorm:"not null" json:"total"`
}

// Payment model - PostgreSQL (critical financial data)
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null" json:"order_id"`
	Order         Order     `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	UserID        uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Method        string    `gorm:"not null" json:"method"`        // cod, card, upi
	Status        string    `gorm:"default:pending" json:"status"` // pending, paid, failed, refunded
	TransactionID string    `gorm:"uniqueIndex" json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	Metadata      JSONB     `gorm:"type:jsonb" json:"metadata"`
}
