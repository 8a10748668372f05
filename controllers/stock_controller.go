package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"inventory-app/config"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type StockController struct {
	DB   *gorm.DB
	repo *repositories.StockRepository
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{DB: db, repo: repositories.NewStockRepository(db)}
}

type stockInput struct {
	CategoryID    uint   `json:"categoryId" validate:"required"`
	SubCategoryID uint   `json:"subCategoryId" validate:"required"`
	BrandID       uint   `json:"brandId" validate:"required"`
	ModalID       uint   `json:"modalId" validate:"required"`
	MopID         uint   `json:"mopId" validate:"required"`
	VendorID      uint   `json:"vendorId" validate:"required"`
	SerialNumber  string `json:"serialNumber" validate:"required"`
	ProductNumber string `json:"productNumber" validate:"required"`
	BillNumber    string `json:"billNumber" validate:"required"`
	BillDate      string `json:"billDate" validate:"required"`
}

// CreateStock inserts a new item, always unissued. The duplicate check
// runs on the six-field identity tuple before the insert; the composite
// unique index backs it up.
func (c *StockController) CreateStock(ctx *fiber.Ctx) error {
	var input stockInput

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	billDate, err := parseBillDate(input.BillDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid bill date"})
	}

	if status, msg := c.checkReferences(input); status != 0 {
		return ctx.Status(status).JSON(fiber.Map{"error": msg})
	}

	var count int64
	if err := c.duplicateQuery(input, 0).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product with these details already exists"})
	}

	product := models.Product{
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		BrandID:       input.BrandID,
		ModalID:       input.ModalID,
		MopID:         input.MopID,
		VendorID:      input.VendorID,
		SerialNumber:  input.SerialNumber,
		ProductNumber: input.ProductNumber,
		BillNumber:    input.BillNumber,
		BillDate:      billDate,
		Issued:        false,
	}
	if err := c.DB.Create(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	loaded, err := c.loadProduct(product.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"product": loaded})
}

// GetStocks is the listing/report query: exact filters, partial text
// filters, bill date range, issuance status, sort and pagination.
func (c *StockController) GetStocks(ctx *fiber.Ctx) error {
	filter := buildStockFilter(ctx)

	products, total, err := c.repo.Search(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"products": products,
		"meta": fiber.Map{
			"total":       total,
			"page":        filter.Page,
			"limit":       filter.Limit,
			"total_pages": (total + int64(filter.Limit) - 1) / int64(filter.Limit),
		},
	})
}

// UpdateStock carries both transitions of the issuance lifecycle. A body
// with a user id is the issue action; anything else is the generic edit,
// which always resets the item to unissued and clears holder and date.
func (c *StockController) UpdateStock(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product ID is required"})
	}

	var input struct {
		stockInput
		User uint `json:"user"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.User != 0 {
		return c.issueStock(ctx, uint(id), input.User)
	}

	validate := validator.New()
	if err := validate.Struct(input.stockInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	billDate, err := parseBillDate(input.BillDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid bill date"})
	}

	var product models.Product
	if err := c.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if status, msg := c.checkReferences(input.stockInput); status != 0 {
		return ctx.Status(status).JSON(fiber.Map{"error": msg})
	}

	var count int64
	if err := c.duplicateQuery(input.stockInput, uint(id)).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Update would create a duplicate product"})
	}

	// Editing always reverts the item to unissued.
	if err := c.DB.Model(&product).Updates(map[string]interface{}{
		"category_id":     input.CategoryID,
		"sub_category_id": input.SubCategoryID,
		"brand_id":        input.BrandID,
		"modal_id":        input.ModalID,
		"mop_id":          input.MopID,
		"vendor_id":       input.VendorID,
		"serial_number":   input.SerialNumber,
		"product_number":  input.ProductNumber,
		"bill_number":     input.BillNumber,
		"bill_date":       billDate,
		"issued":          false,
		"user_id":         nil,
		"issued_date":     nil,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	loaded, err := c.loadProduct(product.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"product": loaded})
}

// issueStock moves an item to the issued state: holder and timestamp are
// set, every other field stays as it was.
func (c *StockController) issueStock(ctx *fiber.Ctx, id uint, userID uint) error {
	var product models.Product
	if err := c.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := c.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	if err := c.DB.Model(&product).Updates(map[string]interface{}{
		"issued":      true,
		"user_id":     userID,
		"issued_date": now,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	loaded, err := c.loadProduct(product.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	go utils.SendIssueNotification(*loaded, user)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"product": loaded})
}

// DeleteStock removes an item while it is unissued. Issued items must be
// reverted first.
func (c *StockController) DeleteStock(ctx *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.ID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product ID is required"})
	}

	var product models.Product
	if err := c.DB.First(&product, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if product.Issued {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete an issued product"})
	}

	if err := c.DB.Delete(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Deleted"})
}

// ExportStocks writes the current filter result (all pages) as an Excel
// workbook.
func (c *StockController) ExportStocks(ctx *fiber.Ctx) error {
	filter := buildStockFilter(ctx)
	filter.Page = 0

	products, _, err := c.repo.Search(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []interface{}{
		"No", "Category", "Sub Category", "Brand", "Modal", "Mode of Purchase",
		"Vendor", "Serial Number", "Product Number", "Bill Number", "Bill Date",
		"Issued", "Issued To", "Issued Date",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	for i, product := range products {
		issued := "No"
		issuedTo := ""
		issuedDate := ""
		if product.Issued {
			issued = "Yes"
			if product.User != nil {
				issuedTo = product.User.Username
			}
			if product.IssuedDate != nil {
				issuedDate = product.IssuedDate.Format("2006-01-02")
			}
		}

		row := []interface{}{
			i + 1,
			product.Category.Name,
			product.SubCategory.Name,
			product.Brand.Name,
			product.Modal.Name,
			product.Mop.Name,
			product.Vendor.Name,
			product.SerialNumber,
			product.ProductNumber,
			product.BillNumber,
			product.BillDate.Format("2006-01-02"),
			issued,
			issuedTo,
			issuedDate,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.xlsx"`)
	return ctx.SendStream(bytes.NewReader(buf.Bytes()))
}

// checkReferences resolves the six reference fields. Returns a non-zero
// status and message on the first missing one.
func (c *StockController) checkReferences(input stockInput) (int, string) {
	checks := []struct {
		model interface{}
		id    uint
		name  string
	}{
		{&models.Category{}, input.CategoryID, "Category"},
		{&models.SubCategory{}, input.SubCategoryID, "SubCategory"},
		{&models.Brand{}, input.BrandID, "Brand"},
		{&models.Modal{}, input.ModalID, "Modal"},
		{&models.MOP{}, input.MopID, "Mode of Purchase"},
		{&models.Vendor{}, input.VendorID, "Vendor"},
	}

	for _, check := range checks {
		var count int64
		if err := c.DB.Model(check.model).Where("id = ?", check.id).Count(&count).Error; err != nil {
			return fiber.StatusInternalServerError, err.Error()
		}
		if count == 0 {
			return fiber.StatusNotFound, fmt.Sprintf("%s not found", check.name)
		}
	}

	return 0, ""
}

// duplicateQuery matches the identity tuple; excludeID skips the record
// being updated.
func (c *StockController) duplicateQuery(input stockInput, excludeID uint) *gorm.DB {
	query := c.DB.Model(&models.Product{}).Where(
		"serial_number = ? AND bill_number = ? AND category_id = ? AND sub_category_id = ? AND brand_id = ? AND modal_id = ?",
		input.SerialNumber, input.BillNumber, input.CategoryID,
		input.SubCategoryID, input.BrandID, input.ModalID,
	)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	return query
}

func (c *StockController) loadProduct(id uint) (*models.Product, error) {
	var product models.Product
	err := c.DB.
		Preload("Category").
		Preload("SubCategory").
		Preload("Brand").
		Preload("Modal").
		Preload("Mop").
		Preload("Vendor").
		Preload("User").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func buildStockFilter(ctx *fiber.Ctx) repositories.StockFilter {
	filter := repositories.StockFilter{
		CategoryID:    uint(ctx.QueryInt("category")),
		SubCategoryID: uint(ctx.QueryInt("subCategory")),
		BrandID:       uint(ctx.QueryInt("brand")),
		ModalID:       uint(ctx.QueryInt("modal")),
		MopID:         uint(ctx.QueryInt("mop")),
		VendorID:      uint(ctx.QueryInt("vendor")),
		UserID:        uint(ctx.QueryInt("user")),
		SerialNumber:  ctx.Query("serialNumber"),
		ProductNumber: ctx.Query("productNumber"),
		BillNumber:    ctx.Query("billNumber"),
		Status:        ctx.Query("status"),
		SortBy:        ctx.Query("sortBy"),
		SortDir:       ctx.Query("sortDir", "asc"),
		Page:          ctx.QueryInt("page", 1),
		Limit:         ctx.QueryInt("limit", config.StockPageSize),
	}

	if from, err := parseBillDate(ctx.Query("billDateFrom")); err == nil {
		filter.BillDateFrom = &from
	}
	if to, err := parseBillDate(ctx.Query("billDateTo")); err == nil {
		filter.BillDateTo = &to
	}
	// A single billDate narrows to that whole day.
	if day, err := parseBillDate(ctx.Query("billDate")); err == nil {
		filter.BillDateFrom = &day
		filter.BillDateTo = &day
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = config.StockPageSize
	}

	return filter
}

func parseBillDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %s", value)
}
