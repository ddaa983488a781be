package auth

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
	msgEmailTaken         = "Email already registered"
	msgUsernameTaken      = "Username already taken"
	msgInvalidCredentials = "Invalid username or password"
	msgIdentityTaken      = "Username or email already registered"
)

func Signup(c *gin.Context) {
	var req dto.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	db := database.Conn(c.Request.Context())

	taken, err := userExists(db, "email = ?", req.Email)
	if err != nil {
		utils.AbortWithInternal(c, err, "signup: email lookup failed")
		return
	}
	if taken {
		utils.AbortWithDetail(c, http.StatusBadRequest, msgEmailTaken)
		return
	}

	taken, err = userExists(db, "username = ?", req.Username)
	if err != nil {
		utils.AbortWithInternal(c, err, "signup: username lookup failed")
		return
	}
	if taken {
		utils.AbortWithDetail(c, http.StatusBadRequest, msgUsernameTaken)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.AbortWithInternal(c, err, "signup: hash password")
		return
	}

	user := model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		// a concurrent signup won the race between the checks and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.AbortWithDetail(c, http.StatusBadRequest, msgIdentityTaken)
			return
		}
		utils.AbortWithInternal(c, err, "signup: create user")
		return
	}

	c.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, "User is created successfully", summary(&user)))
}

func Login(c *gin.Context) {
	var req dto.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	var user model.User
	err := database.Conn(c.Request.Context()).
		Where("username = ? OR email = ?", req.UsernameOrEmail, req.UsernameOrEmail).
		First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.AbortWithInternal(c, err, "login: user lookup failed")
		return
	}
	if err != nil || !utils.VerifyPassword(req.Password, user.Password) {
		utils.AbortWithDetail(c, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	access, refresh, err := utils.GenerateTokens(user.Username)
	if err != nil {
		utils.AbortWithInternal(c, err, "login: issue tokens")
		return
	}

	c.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, "User successfully logged in", dto.LoginData{
		Token: dto.TokenPair{Access: access, Refresh: refresh},
		User:  summary(&user),
	}))
}

// Refresh trades a refresh token for a new token pair.
func Refresh(c *gin.Context) {
	var req dto.RefreshInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithValidation(c, err)
		return
	}

	access, refresh, err := utils.RefreshTokens(req.Refresh)
	if err != nil {
		utils.AbortWithDetail(c, http.StatusUnauthorized, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.TokenPair{Access: access, Refresh: refresh})
}

func userExists(db *gorm.DB, query string, arg string) (bool, error) {
	var count int64
	if err := db.Model(&model.User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func summary(user *model.User) dto.UserSummary {
	return dto.UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
