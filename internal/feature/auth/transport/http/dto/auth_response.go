package dto

// UserRes is the public profile slice returned alongside a token.
type UserRes struct {
	Username string `json:"username"`
}

// AuthRes is the success response for register and login.
type AuthRes struct {
	Token string  `json:"token"`
	User  UserRes `json:"user"`
}
