package models

// RoleCustomer is the one role the console refuses to start a session for
const RoleCustomer = "customer"

// AuthUser is the user record returned by the login endpoint
type AuthUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginRequest is the credential payload for the auth endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the token and user identity of a successful login
type LoginResult struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// LoginResponse is the auth endpoint envelope
type LoginResponse struct {
	Data    LoginResult `json:"data"`
	Message string      `json:"message,omitempty"`
}
