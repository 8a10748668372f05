package models

import "time"

// VendorCounterName is the counter row that feeds Vendor.VendorID.
const VendorCounterName = "vendorId"

// Counter backs the sequential id generator. One named row per sequence,
// currently only "vendorId".
type Counter struct {
	Name string `json:"name" gorm:"primaryKey"`
	Seq  int    `json:"seq" gorm:"not null;default:0"`
}

type Vendor struct {
	ID uint `json:"id" gorm:"primaryKey"`
	// VendorID is the operator-facing vendor number, assigned once from the
	// counter at creation and never reassigned.
	VendorID  int       `json:"vendorId" gorm:"uniqueIndex"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address" gorm:"not null"`
	Mobile    string    `json:"mobile" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
