package handler

type signupRequest struct {
	Username        string `json:"username"         form:"username"         validate:"required,min=3,max=20,username_charset"`
	Password        string `json:"password"         form:"password"         validate:"required,min=6,password_complexity"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}
