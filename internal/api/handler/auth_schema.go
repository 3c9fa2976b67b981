package handler

// Field names and validation mirror the credential policy enforced by the
// user store: password length 4 minimum, nothing else.

type registerRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type loginRequest struct {
	UserNameOrEmail string `json:"userNameOrEmail" validate:"required"`
	Password        string `json:"password"        validate:"required"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
