package dto

import "foodme/model"

type CafeCreateInput struct {
	Name        string `json:"name" binding:"required,max=25"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
	PhoneNumber string `json:"phonenumber" binding:"required"`
	WifiPass    string `json:"wifipass"`
	LogoURL     string `json:"logo_url"`
	ImageURL    string `json:"image_url"`
}

type CafeNameUpdateInput struct {
	NewName string `json:"new_name" binding:"required,max=25"`
}

// CafeUpdateInput replaces every field. Optional-looking fields must be
// present in the body but may be empty.
type CafeUpdateInput struct {
	Name        string  `json:"name" binding:"required,max=25"`
	Location    string  `json:"location" binding:"required"`
	Description *string `json:"description" binding:"required"`
	PhoneNumber string  `json:"phonenumber" binding:"required"`
	WifiPass    *string `json:"wifipass" binding:"required"`
	LogoURL     *string `json:"logo_url" binding:"required"`
	ImageURL    *string `json:"image_url" binding:"required"`
}

type CafeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PhoneNumber string `json:"phonenumber"`
	WifiPass    string `json:"wifipass"`
	LogoURL     string `json:"logo_url"`
	ImageURL    string `json:"image_url"`
}

type CafeCheckResponse struct {
	HasCafe bool `json:"has_cafe"`
}

func NewCafeResponse(cafe *model.Cafe) CafeResponse {
	return CafeResponse{
		ID:          cafe.ID,
		Name:        cafe.Name,
		Location:    cafe.Location,
		Description: cafe.Description,
		PhoneNumber: cafe.PhoneNumber,
		WifiPass:    cafe.WifiPass,
		LogoURL:     cafe.LogoURL,
		ImageURL:    cafe.ImageURL,
	}
}

// Apply copies every field of a validated full update onto cafe.
func (in CafeUpdateInput) Apply(cafe *model.Cafe) {
	cafe.Name = in.Name
	cafe.Location = in.Location
	cafe.Description = *in.Description
	cafe.PhoneNumber = in.PhoneNumber
	cafe.WifiPass = *in.WifiPass
	cafe.LogoURL = *in.LogoURL
	cafe.ImageURL = *in.ImageURL
}
