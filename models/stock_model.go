package models

import "time"

// Product is a physical stock item. The tuple (serialNumber, billNumber,
// categoryId, subCategoryId, brandId, modalId) identifies an item; the
// composite unique index enforces that below the duplicate pre-checks in
// the controllers.
type Product struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	CategoryID    uint         `json:"categoryId" gorm:"not null;uniqueIndex:idx_products_identity"`
	Category      *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	SubCategoryID uint         `json:"subCategoryId" gorm:"not null;uniqueIndex:idx_products_identity"`
	SubCategory   *SubCategory `json:"subCategory,omitempty" gorm:"foreignKey:SubCategoryID"`
	BrandID       uint         `json:"brandId" gorm:"not null;uniqueIndex:idx_products_identity"`
	Brand         *Brand       `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	ModalID       uint         `json:"modalId" gorm:"not null;uniqueIndex:idx_products_identity"`
	Modal         *Modal       `json:"modal,omitempty" gorm:"foreignKey:ModalID"`
	MopID         uint         `json:"mopId" gorm:"not null;index"`
	Mop           *MOP         `json:"mop,omitempty" gorm:"foreignKey:MopID"`
	VendorID      uint         `json:"vendorId" gorm:"not null;index"`
	Vendor        *Vendor      `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	UserID        *uint        `json:"userId"`
	User          *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	SerialNumber  string       `json:"serialNumber" gorm:"not null;uniqueIndex:idx_products_identity"`
	ProductNumber string       `json:"productNumber" gorm:"not null"`
	BillNumber    string       `json:"billNumber" gorm:"not null;uniqueIndex:idx_products_identity"`
	BillDate      time.Time    `json:"billDate" gorm:"not null"`
	Issued        bool         `json:"issued" gorm:"not null;default:false"`
	IssuedDate    *time.Time   `json:"issuedDate"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
