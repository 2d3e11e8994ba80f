package user

type AdminConfirmRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse is a single directory record. Timestamps are unix millis.
type UserResponse struct {
	Username      string `json:"username"`
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	Enabled       bool   `json:"enabled"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

type UserListResponse struct {
	Items []UserResponse `json:"items"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
