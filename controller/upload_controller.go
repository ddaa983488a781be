package controller

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"foodme/database"
	"foodme/dto"
	"foodme/model"
	"foodme/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	maxUploadSize = 5 << 20
	uploadsPrefix = "/uploads/"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var errNoFile = errors.New("file is required")

func UploadCafeLogo(c *gin.Context) {
	uploadCafeImage(c, "logo", func(cafe *model.Cafe) *string { return &cafe.LogoURL })
}

func UploadCafeImage(c *gin.Context) {
	uploadCafeImage(c, "image", func(cafe *model.Cafe) *string { return &cafe.ImageURL })
}

// uploadCafeImage stores the multipart "file" for the caller's cafe and
// points the selected URL field at it.
func uploadCafeImage(c *gin.Context, kind string, field func(*model.Cafe) *string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	db := database.Conn(c.Request.Context())
	cafe, ok := userCafe(c, db, user)
	if !ok {
		return
	}

	url := field(cafe)
	previousURL := *url
	newURL, err := saveImage(c, fmt.Sprintf("cafe-%d-%s", cafe.ID, kind))
	if err != nil {
		utils.AbortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	*url = newURL
	if !saveCafe(c, db, cafe) {
		removeUpload(c, newURL)
		return
	}
	removeUpload(c, previousURL)

	c.JSON(http.StatusOK, dto.NewCafeResponse(cafe))
}

// saveImage writes the uploaded file under the upload dir and returns its
// public URL.
func saveImage(c *gin.Context, prefix string) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", errNoFile
		}
		return "", fmt.Errorf("failed to get uploaded file: %v", err)
	}

	if file.Size > maxUploadSize {
		return "", fmt.Errorf("file too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("invalid file type, only JPG/JPEG/PNG allowed")
	}

	if err := os.MkdirAll(options.UploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %v", err)
	}

	newFileName := fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(options.UploadDir, newFileName)); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return uploadsPrefix + newFileName, nil
}

// removeUpload deletes a file previously stored by saveImage. URLs outside
// the upload dir are left alone.
func removeUpload(c *gin.Context, url string) {
	name, ok := strings.CutPrefix(url, uploadsPrefix)
	if !ok || name == "" {
		return
	}
	if err := os.Remove(filepath.Join(options.UploadDir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Str("file", name).Msg("failed to delete upload")
	}
}
