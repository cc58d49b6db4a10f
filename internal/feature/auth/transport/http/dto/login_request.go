package dto

// LoginReq represents the request body for the /api/auth/login endpoint.
// The email field accepts either a username or an email address, so it has
// no email-format binding.
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
