package auth

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ConfirmSignUpRequest struct {
	Email            string `json:"email" validate:"required,email"`
	ConfirmationCode string `json:"confirmationCode" validate:"required,len=6,numeric"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmForgotPasswordRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	ConfirmationCode string `json:"confirmationCode" validate:"required"`
}

// AuthResponse is the login/refresh body. Token is the ID token; the refresh
// token never appears here, it travels in the response cookie only.
type AuthResponse struct {
	Token       string `json:"token"`
	ExpiresIn   int32  `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

type CodeDeliveryDetailsResponse struct {
	DeliveryMedium string `json:"deliveryMedium"`
	Destination    string `json:"destination"`
}

type SignUpResponse struct {
	UserSub             string                       `json:"userSub"`
	UserConfirmed       bool                         `json:"userConfirmed"`
	CodeDeliveryDetails *CodeDeliveryDetailsResponse `json:"codeDeliveryDetails,omitempty"`
}

type ForgotPasswordResponse struct {
	CodeDeliveryDetails *CodeDeliveryDetailsResponse `json:"codeDeliveryDetails,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
