package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product model - MongoDB (flexible catalog data)
type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Slug               string             `bson:"slug" json:"slug"`
	Description        string             `bson:"description" json:"description"`
	CategoryID         primitive.ObjectID `bson:"category_id,omitempty" json:"category"`
	CategoryName       string             `bson:"category_name" json:"category_name"`
	Price              float64            `bson:"price" json:"price"`
	ComparePrice       *float64           `bson:"compare_price,omitempty" json:"compare_price"`
	SKU                string             `bson:"sku" json:"sku"`
	Quantity           int                `bson:"quantity" json:"quantity"`
	Images             []string           `bson:"images" json:"images"`
	VendorDetails      VendorDetails      `bson:"vendor_details" json:"vendor_details"`
	AverageRating      float64            `bson:"average_rating" json:"average_rating"`
	DiscountPercentage float64            `bson:"discount_percentage" json:"discount_percentage"`
	IsFeatured         bool               `bson:"is_featured" json:"is_featured"`
	IsActive           bool               `bson:"is_active" json:"is_active"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// VendorDetails is denormalized into the product document so catalog reads
// never join back to PostgreSQL.
type VendorDetails struct {
	VendorID string `bson:"vendor_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Logo     string `bson:"logo,omitempty" json:"logo"`
}

// Category model - MongoDB
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image,omitempty" json:"image"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
