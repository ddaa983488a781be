package dto

type SignupInput struct {
	Username string `json:"username" binding:"required,max=25"`
	Email    string `json:"email" binding:"required,email,max=70"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type RefreshInput struct {
	Refresh string `json:"refresh" binding:"required"`
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type LoginData struct {
	Token TokenPair   `json:"token"`
	User  UserSummary `json:"user"`
}
