package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"foodme/database"
	"foodme/dto"
	"foodme/model"
	"foodme/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Menu"
)

var exportHeader = []interface{}{"Menu", "Name", "Price", "Description", "Ingredients", "Image URL"}

// ImportProducts bulk-creates products for a menu from the first sheet of an
// uploaded xlsx file. The first row is a header; invalid rows are skipped.
// Columns: name, price, description, ingredients, image_url.
func ImportProducts(c *gin.Context) {
	db := database.Conn(c.Request.Context())
	cafe, menu, ok := productParents(c, db)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.AbortWithDetail(c, http.StatusBadRequest, "Excel file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.AbortWithInternal(c, err, "import products: open upload")
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		utils.AbortWithDetail(c, http.StatusBadRequest, "Failed to parse Excel file")
		return
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		utils.AbortWithDetail(c, http.StatusBadRequest, "Excel file has no sheets")
		return
	}

	rows, err := xl.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		utils.AbortWithDetail(c, http.StatusBadRequest, "Excel must have at least one row of data")
		return
	}

	logger := zerolog.Ctx(c.Request.Context())
	products := make([]model.Product, 0, len(rows)-1)
	for i, row := range rows[1:] {
		product, err := productFromRow(row)
		if err != nil {
			logger.Debug().Int("row", i+2).Err(err).Msg("import products: row skipped")
			continue
		}
		product.CafeID = cafe.ID
		product.MenuID = menu.ID
		products = append(products, product)
	}

	if len(products) == 0 {
		utils.AbortWithDetail(c, http.StatusBadRequest, "No valid rows found")
		return
	}

	if err := db.Create(&products).Error; err != nil {
		utils.AbortWithInternal(c, err, "import products: insert failed")
		return
	}

	c.JSON(http.StatusCreated, dto.ImportResponse{
		Count:   len(products),
		Skipped: len(rows) - 1 - len(products),
		Data:    products,
	})
}

func productFromRow(row []string) (model.Product, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	name := cell(0)
	if name == "" || utf8.RuneCountInString(name) > 25 {
		return model.Product{}, fmt.Errorf("invalid name %q", name)
	}

	raw, err := strconv.ParseFloat(cell(1), 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid price %q", cell(1))
	}
	price, err := roundPrice(raw)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid price %q: %w", cell(1), err)
	}

	description := cell(2)
	if utf8.RuneCountInString(description) > 150 {
		return model.Product{}, fmt.Errorf("description too long")
	}

	return model.Product{
		Name:        name,
		Price:       price,
		Description: description,
		Ingredients: cell(3),
		ImageURL:    cell(4),
	}, nil
}

// ExportMenus downloads every menu of a cafe with its products as xlsx.
func ExportMenus(c *gin.Context) {
	cafeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	db := database.Conn(c.Request.Context())

	var cafe model.Cafe
	if !findOrAbort(c, db, &cafe, cafeID, msgCafeNotFound) {
		return
	}

	var menus []model.Menu
	err := db.Where("cafe_id = ?", cafe.ID).
		Order("id").
		Preload("Products", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Find(&menus).Error
	if err != nil {
		utils.AbortWithInternal(c, err, "export menus: lookup failed")
		return
	}

	xl, err := menusWorkbook(menus)
	if err != nil {
		utils.AbortWithInternal(c, err, "export menus: build workbook")
		return
	}
	defer xl.Close()

	buf, err := xl.WriteToBuffer()
	if err != nil {
		utils.AbortWithInternal(c, err, "export menus: write workbook")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cafe-%d-menus.xlsx", cafe.ID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func menusWorkbook(menus []model.Menu) (*excelize.File, error) {
	xl := excelize.NewFile()
	if err := fillMenusSheet(xl, menus); err != nil {
		xl.Close()
		return nil, err
	}
	return xl, nil
}

func fillMenusSheet(xl *excelize.File, menus []model.Menu) error {
	if err := xl.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	if err := xl.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}

	rowNum := 2
	for _, menu := range menus {
		for _, p := range menu.Products {
			cellRef, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}
			row := []interface{}{menu.Name, p.Name, p.Price, p.Description, p.Ingredients, p.ImageURL}
			if err := xl.SetSheetRow(exportSheet, cellRef, &row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}
