package dto

// request register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// request login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// response user info
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// response me
type MeResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// generic response
type MessageResponse struct {
	Message string `json:"message"`
}

// error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// register success response
type RegisterSuccessResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// login success response
type LoginSuccessResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}
