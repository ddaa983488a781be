package controller

import (
	"errors"
	"net/http"
	"strconv"

	"foodme/database"
	"foodme/model"
	"foodme/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Options carries the settings handlers read at request time.
type Options struct {
	UploadDir             string
	QRURLTemplate         string
	MenuOwnershipRequired bool
}

var options = Options{
	UploadDir:     "./uploads",
	QRURLTemplate: "https://example.com/cafe/%s",
}

func Configure(opts Options) {
	options = opts
}

const (
	msgUserNotFound = "User not found"
	msgCafeNotFound = "Cafe not found"
	msgMenuNotFound = "Menu not found"
	msgNotOwner     = "You are not the owner of this cafe"
)

// currentUser loads the user named by the access token. It writes a 401 when
// the token subject no longer exists.
func currentUser(c *gin.Context) (*model.User, bool) {
	username, ok := utils.CurrentUsername(c)
	if !ok {
		utils.AbortWithDetail(c, http.StatusUnauthorized, msgUserNotFound)
		return nil, false
	}

	var user model.User
	err := database.Conn(c.Request.Context()).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithDetail(c, http.StatusUnauthorized, msgUserNotFound)
		} else {
			utils.AbortWithInternal(c, err, "failed to load current user")
		}
		return nil, false
	}
	return &user, true
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.AbortWithDetail(c, http.StatusUnprocessableEntity, "Invalid "+name+" format")
		return 0, false
	}
	return uint(id), true
}

// findOrAbort loads dest by primary key, writing 404 with notFound when absent.
func findOrAbort(c *gin.Context, db *gorm.DB, dest interface{}, id uint, notFound string) bool {
	if err := db.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithDetail(c, http.StatusNotFound, notFound)
		} else {
			utils.AbortWithInternal(c, err, "lookup failed")
		}
		return false
	}
	return true
}

// authorizeCafe enforces menu/product ownership when it is switched on. The
// route must then be behind utils.AuthMiddleware.
func authorizeCafe(c *gin.Context, cafe *model.Cafe) bool {
	if !options.MenuOwnershipRequired {
		return true
	}

	user, ok := currentUser(c)
	if !ok {
		return false
	}
	if cafe.OwnerID != user.ID {
		utils.AbortWithDetail(c, http.StatusForbidden, msgNotOwner)
		return false
	}
	return true
}
