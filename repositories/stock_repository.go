package repositories

import (
	"strings"
	"time"

	"inventory-app/models"

	"gorm.io/gorm"
)

// StockFilter is the search form of the stock listing and report screens.
// Zero values mean "not filtered". Page is 1-based; Page 0 disables
// pagination (used by the export).
type StockFilter struct {
	CategoryID    uint
	SubCategoryID uint
	BrandID       uint
	ModalID       uint
	MopID         uint
	VendorID      uint
	UserID        uint

	SerialNumber  string
	ProductNumber string
	BillNumber    string

	BillDateFrom *time.Time
	BillDateTo   *time.Time

	Status string // "issued", "unissued" or "" for both

	SortBy  string
	SortDir string // "asc" or "desc"

	Page  int
	Limit int
}

type StockRepository struct {
	DB *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{DB: db}
}

// Search applies exact filters, partial text filters, the bill date
// range, the issuance status and the user filter, then sorts and
// paginates. The returned count is the match total before pagination.
func (r *StockRepository) Search(filter StockFilter) ([]models.Product, int64, error) {
	query := r.DB.Model(&models.Product{})

	if filter.CategoryID != 0 {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.SubCategoryID != 0 {
		query = query.Where("products.sub_category_id = ?", filter.SubCategoryID)
	}
	if filter.BrandID != 0 {
		query = query.Where("products.brand_id = ?", filter.BrandID)
	}
	if filter.ModalID != 0 {
		query = query.Where("products.modal_id = ?", filter.ModalID)
	}
	if filter.MopID != 0 {
		query = query.Where("products.mop_id = ?", filter.MopID)
	}
	if filter.VendorID != 0 {
		query = query.Where("products.vendor_id = ?", filter.VendorID)
	}

	if filter.SerialNumber != "" {
		query = query.Where("LOWER(products.serial_number) LIKE ?", likePattern(filter.SerialNumber))
	}
	if filter.ProductNumber != "" {
		query = query.Where("LOWER(products.product_number) LIKE ?", likePattern(filter.ProductNumber))
	}
	if filter.BillNumber != "" {
		query = query.Where("LOWER(products.bill_number) LIKE ?", likePattern(filter.BillNumber))
	}

	// Range end is inclusive through 23:59:59.999 of that day.
	if filter.BillDateFrom != nil {
		query = query.Where("products.bill_date >= ?", startOfDay(*filter.BillDateFrom))
	}
	if filter.BillDateTo != nil {
		query = query.Where("products.bill_date <= ?", endOfDay(*filter.BillDateTo))
	}

	switch filter.Status {
	case "issued":
		query = query.Where("products.issued = ?", true)
	case "unissued":
		query = query.Where("products.issued = ?", false)
	}

	if filter.UserID != 0 {
		query = query.Where("products.user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySort(query, filter)

	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Preload("SubCategory").
		Preload("Brand").
		Preload("Modal").
		Preload("Mop").
		Preload("Vendor").
		Preload("User").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// applySort orders by the referenced record's display name for reference
// keys, by value for billDate and the text columns, newest-first
// otherwise.
func applySort(query *gorm.DB, filter StockFilter) *gorm.DB {
	dir := "ASC"
	if strings.EqualFold(filter.SortDir, "desc") {
		dir = "DESC"
	}

	switch filter.SortBy {
	case "category":
		return query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Order("categories.name " + dir)
	case "subCategory":
		return query.
			Joins("JOIN sub_categories ON sub_categories.id = products.sub_category_id").
			Order("sub_categories.name " + dir)
	case "brand":
		return query.
			Joins("JOIN brands ON brands.id = products.brand_id").
			Order("brands.name " + dir)
	case "modal":
		return query.
			Joins("JOIN modals ON modals.id = products.modal_id").
			Order("modals.name " + dir)
	case "mop":
		return query.
			Joins("JOIN mops ON mops.id = products.mop_id").
			Order("mops.name " + dir)
	case "vendor":
		return query.
			Joins("JOIN vendors ON vendors.id = products.vendor_id").
			Order("vendors.name " + dir)
	case "user":
		return query.
			Joins("LEFT JOIN users ON users.id = products.user_id").
			Order("users.username " + dir)
	case "billDate":
		return query.Order("products.bill_date " + dir)
	case "serialNumber":
		return query.Order("products.serial_number " + dir)
	case "productNumber":
		return query.Order("products.product_number " + dir)
	case "billNumber":
		return query.Order("products.bill_number " + dir)
	default:
		return query.Order("products.created_at DESC")
	}
}

func likePattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
