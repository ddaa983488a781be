package controller

import (
	"errors"
	"math"
	"net/http"

	"foodme/database"
	"foodme/dto"
	"foodme/model"
	"foodme/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct stores a product under the cafe and menu named in the path.
// The menu is not required to belong to that cafe.
func CreateProduct(c *gin.Context) {
	var req dto.ProductCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	price, err := roundPrice(*req.Price)
	if err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	db := database.Conn(c.Request.Context())
	cafe, menu, ok := productParents(c, db)
	if !ok {
		return
	}

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		MenuID:      menu.ID,
		CafeID:      cafe.ID,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
	}
	if err := db.Create(&product).Error; err != nil {
		utils.AbortWithInternal(c, err, "create product failed")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetMenuProducts answers 404 when the cafe/menu pair has no products.
func GetMenuProducts(c *gin.Context) {
	cafeID, ok := parseID(c, "id")
	if !ok {
		return
	}
	menuID, ok := parseID(c, "menu_id")
	if !ok {
		return
	}

	var products []model.Product
	err := database.Conn(c.Request.Context()).
		Where("menu_id = ? AND cafe_id = ?", menuID, cafeID).
		Order("id").
		Find(&products).Error
	if err != nil {
		utils.AbortWithInternal(c, err, "list products failed")
		return
	}
	if len(products) == 0 {
		utils.AbortWithDetail(c, http.StatusNotFound, "No products found")
		return
	}

	c.JSON(http.StatusOK, products)
}

// productParents resolves the :id and :menu_id path parameters to existing rows.
func productParents(c *gin.Context, db *gorm.DB) (*model.Cafe, *model.Menu, bool) {
	cafeID, ok := parseID(c, "id")
	if !ok {
		return nil, nil, false
	}
	menuID, ok := parseID(c, "menu_id")
	if !ok {
		return nil, nil, false
	}

	var cafe model.Cafe
	if !findOrAbort(c, db, &cafe, cafeID, msgCafeNotFound) {
		return nil, nil, false
	}
	var menu model.Menu
	if !findOrAbort(c, db, &menu, menuID, msgMenuNotFound) {
		return nil, nil, false
	}
	if !authorizeCafe(c, &cafe) {
		return nil, nil, false
	}
	return &cafe, &menu, true
}

// maxPrice bounds prices so they fit an int column on every database.
const maxPrice = math.MaxInt32

var errInvalidPrice = errors.New("price must be a finite number between 0 and 2147483647")

// roundPrice rounds to whole units, rejecting values that do not fit the column.
func roundPrice(price float64) (int, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 || price > maxPrice {
		return 0, errInvalidPrice
	}
	return int(math.Round(price)), nil
}
