package dto

type MenuInput struct {
	Name string `json:"name" binding:"required,max=25"`
}

type ProductCreateInput struct {
	Name        string   `json:"name" binding:"required,max=25"`
	Price       *float64 `json:"price" binding:"required,gte=0,lte=2147483647"`
	Description string   `json:"description" binding:"max=150"`
	ImageURL    string   `json:"image_url"`
	Ingredients string   `json:"ingredients"`
}

type ImportResponse struct {
	Count   int         `json:"count"`
	Skipped int         `json:"skipped"`
	Data    interface{} `json:"data"`
}
