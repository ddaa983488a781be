package controller

import (
	"errors"
	"net/http"

	"foodme/database"
	"foodme/dto"
	"foodme/model"
	"foodme/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateMenu(c *gin.Context) {
	cafeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.MenuInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	db := database.Conn(c.Request.Context())

	var cafe model.Cafe
	if !findOrAbort(c, db, &cafe, cafeID, msgCafeNotFound) || !authorizeCafe(c, &cafe) {
		return
	}

	menu := model.Menu{Name: req.Name, CafeID: cafe.ID}
	if err := db.Create(&menu).Error; err != nil {
		utils.AbortWithInternal(c, err, "create menu failed")
		return
	}

	c.JSON(http.StatusCreated, menu)
}

// GetCafeMenus answers 404 both for an unknown cafe and for a cafe without menus.
func GetCafeMenus(c *gin.Context) {
	cafeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var menus []model.Menu
	if err := database.Conn(c.Request.Context()).Where("cafe_id = ?", cafeID).Order("id").Find(&menus).Error; err != nil {
		utils.AbortWithInternal(c, err, "list menus failed")
		return
	}
	if len(menus) == 0 {
		utils.AbortWithDetail(c, http.StatusNotFound, "Menus not found")
		return
	}

	c.JSON(http.StatusOK, menus)
}

func UpdateMenu(c *gin.Context) {
	menuID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.MenuInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	db := database.Conn(c.Request.Context())

	menu, ok := menuForWrite(c, db, menuID)
	if !ok {
		return
	}

	menu.Name = req.Name
	if err := db.Save(menu).Error; err != nil {
		utils.AbortWithInternal(c, err, "update menu failed")
		return
	}

	c.JSON(http.StatusOK, menu)
}

// DeleteMenu removes the menu together with its products.
func DeleteMenu(c *gin.Context) {
	menuID, ok := parseID(c, "id")
	if !ok {
		return
	}

	db := database.Conn(c.Request.Context())

	menu, ok := menuForWrite(c, db, menuID)
	if !ok {
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&model.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(menu).Error
	})
	if err != nil {
		utils.AbortWithInternal(c, err, "delete menu failed")
		return
	}

	c.Status(http.StatusNoContent)
}

// menuForWrite loads a menu and, when ownership is enforced, checks the
// caller owns its cafe.
func menuForWrite(c *gin.Context, db *gorm.DB, menuID uint) (*model.Menu, bool) {
	var menu model.Menu
	if !findOrAbort(c, db, &menu, menuID, msgMenuNotFound) {
		return nil, false
	}
	if !options.MenuOwnershipRequired {
		return &menu, true
	}

	var cafe model.Cafe
	if err := db.First(&cafe, menu.CafeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithDetail(c, http.StatusForbidden, msgNotOwner)
		} else {
			utils.AbortWithInternal(c, err, "menu cafe lookup failed")
		}
		return nil, false
	}
	if !authorizeCafe(c, &cafe) {
		return nil, false
	}
	return &menu, true
}
