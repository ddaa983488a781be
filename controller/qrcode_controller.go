package controller

import (
	"fmt"
	"net/http"

	"foodme/utils"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// qrModulePixels is the edge length of one QR module in the PNG.
const qrModulePixels = 10

// GenerateQRCode renders the public cafe URL as a PNG attachment. It does not
// check that the cafe exists.
func GenerateQRCode(c *gin.Context) {
	cafeID := c.Param("id")
	if cafeID == "" {
		utils.AbortWithDetail(c, http.StatusUnprocessableEntity, "Invalid id format")
		return
	}

	png, err := CafeQRCode(cafeID)
	if err != nil {
		utils.AbortWithInternal(c, err, "qr code generation failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cafe-%s-qrcode.png", cafeID))
	c.Data(http.StatusOK, "image/png", png)
}

func CafeQRCode(cafeID string) ([]byte, error) {
	content := fmt.Sprintf(options.QRURLTemplate, cafeID)
	return qrcode.Encode(content, qrcode.Medium, -qrModulePixels)
}
