package dto

import "strings"

// Request
type (
	CredentialsRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	UsernameRequest struct {
		Username string `json:"username"`
	}

	UpdatePasswordRequest struct {
		Username    string `json:"username"`
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
)

// Response
type (
	UserStatusResponse struct {
		Status   string `json:"status"`
		Username string `json:"username"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}

	LoginResponse struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
)

func (r CredentialsRequest) Valid() bool {
	return strings.TrimSpace(r.Username) != "" && r.Password != ""
}
