package route

import (
	"foodme/auth"
	"foodme/controller"
	"foodme/utils"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(router *gin.Engine) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/refresh", auth.Refresh)
	}
}

// CafeRoutes registers cafes, menus and products. Menu and product writes
// are public unless ownershipRequired is set.
func CafeRoutes(router *gin.Engine, ownershipRequired bool) {
	requireAuth := utils.AuthMiddleware()

	writeGuard := []gin.HandlerFunc{}
	if ownershipRequired {
		writeGuard = append(writeGuard, requireAuth)
	}
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeGuard...), h)
	}

	cafeGroup := router.Group("/cafes")
	{
		cafeGroup.POST("/", requireAuth, controller.CreateCafe)
		cafeGroup.GET("/check", requireAuth, controller.CheckUserCafe)
		cafeGroup.GET("/:id", controller.GetCafe)
		cafeGroup.PUT("/:id", requireAuth, controller.UpdateCafeName)
		cafeGroup.GET("/generate-qrcode/:id", controller.GenerateQRCode)
	}

	userCafe := cafeGroup.Group("/user/cafe")
	userCafe.Use(requireAuth)
	{
		userCafe.GET("", controller.GetUserCafe)
		userCafe.PUT("", controller.UpdateUserCafe)
		userCafe.POST("/logo", controller.UploadCafeLogo)
		userCafe.POST("/image", controller.UploadCafeImage)
	}

	menus := cafeGroup.Group("/:id/menus")
	{
		menus.GET("", controller.GetCafeMenus)
		menus.POST("", guarded(controller.CreateMenu)...)
		menus.GET("/export", controller.ExportMenus)
		menus.GET("/:menu_id/products", controller.GetMenuProducts)
		menus.POST("/:menu_id/products", guarded(controller.CreateProduct)...)
		menus.POST("/:menu_id/products/excel", guarded(controller.ImportProducts)...)
	}

	cafeGroup.PUT("/menus/:id", guarded(controller.UpdateMenu)...)
	cafeGroup.DELETE("/menus/:id", guarded(controller.DeleteMenu)...)
}
