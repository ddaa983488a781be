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

const (
	msgAlreadyOwnsCafe = "User already owns a cafe"
	msgCafeNameTaken   = "Cafe name already taken"
	msgCafeNotOwned    = "Cafe not found or you are not its owner"
)

func CreateCafe(c *gin.Context) {
	var req dto.CafeCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	db := database.Conn(c.Request.Context())

	var owned int64
	if err := db.Model(&model.Cafe{}).Where("owner_id = ?", user.ID).Count(&owned).Error; err != nil {
		utils.AbortWithInternal(c, err, "create cafe: ownership lookup failed")
		return
	}
	if owned > 0 {
		utils.AbortWithDetail(c, http.StatusBadRequest, msgAlreadyOwnsCafe)
		return
	}

	var named int64
	if err := db.Model(&model.Cafe{}).Where("name = ?", req.Name).Count(&named).Error; err != nil {
		utils.AbortWithInternal(c, err, "create cafe: name lookup failed")
		return
	}
	if named > 0 {
		utils.AbortWithDetail(c, http.StatusBadRequest, msgCafeNameTaken)
		return
	}

	cafe := model.Cafe{
		Name:        req.Name,
		OwnerID:     user.ID,
		Location:    req.Location,
		Description: req.Description,
		PhoneNumber: req.PhoneNumber,
		WifiPass:    req.WifiPass,
		LogoURL:     req.LogoURL,
		ImageURL:    req.ImageURL,
	}
	if err := db.Create(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.AbortWithDetail(c, http.StatusBadRequest, msgCafeNameTaken)
			return
		}
		utils.AbortWithInternal(c, err, "create cafe: insert failed")
		return
	}

	c.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, "Cafe created successfully", cafe))
}

func CheckUserCafe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var owned int64
	err := database.Conn(c.Request.Context()).Model(&model.Cafe{}).Where("owner_id = ?", user.ID).Count(&owned).Error
	if err != nil {
		utils.AbortWithInternal(c, err, "check cafe: lookup failed")
		return
	}

	c.JSON(http.StatusOK, dto.CafeCheckResponse{HasCafe: owned > 0})
}

func GetCafe(c *gin.Context) {
	cafeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var cafe model.Cafe
	if !findOrAbort(c, database.Conn(c.Request.Context()), &cafe, cafeID, msgCafeNotFound) {
		return
	}

	c.JSON(http.StatusOK, dto.NewCafeResponse(&cafe))
}

// UpdateCafeName renames a cafe. Cafes owned by someone else are reported as
// not found.
func UpdateCafeName(c *gin.Context) {
	cafeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CafeNameUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	db := database.Conn(c.Request.Context())

	var cafe model.Cafe
	if err := db.Where("id = ? AND owner_id = ?", cafeID, user.ID).First(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithDetail(c, http.StatusNotFound, msgCafeNotOwned)
		} else {
			utils.AbortWithInternal(c, err, "update cafe name: lookup failed")
		}
		return
	}

	cafe.Name = req.NewName
	if !saveCafe(c, db, &cafe) {
		return
	}

	c.JSON(http.StatusOK, dto.NewCafeResponse(&cafe))
}

func GetUserCafe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	cafe, ok := userCafe(c, database.Conn(c.Request.Context()), user)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NewCafeResponse(cafe))
}

func UpdateUserCafe(c *gin.Context) {
	var req dto.CafeUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	db := database.Conn(c.Request.Context())
	cafe, ok := userCafe(c, db, user)
	if !ok {
		return
	}

	req.Apply(cafe)
	if !saveCafe(c, db, cafe) {
		return
	}

	c.JSON(http.StatusOK, dto.NewCafeResponse(cafe))
}

// userCafe loads the cafe owned by user, writing 404 when there is none.
func userCafe(c *gin.Context, db *gorm.DB, user *model.User) (*model.Cafe, bool) {
	var cafe model.Cafe
	if err := db.Where("owner_id = ?", user.ID).First(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithDetail(c, http.StatusNotFound, msgCafeNotFound)
		} else {
			utils.AbortWithInternal(c, err, "user cafe lookup failed")
		}
		return nil, false
	}
	return &cafe, true
}

func saveCafe(c *gin.Context, db *gorm.DB, cafe *model.Cafe) bool {
	if err := db.Save(cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.AbortWithDetail(c, http.StatusBadRequest, msgCafeNameTaken)
		} else {
			utils.AbortWithInternal(c, err, "save cafe failed")
		}
		return false
	}
	return true
}
