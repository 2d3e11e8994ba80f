package auth

import (
	"akurat-backend/pkg/api/errors"
	"akurat-backend/pkg/cognito"
	"akurat-backend/pkg/config"
	"akurat-backend/pkg/logger"
	"akurat-backend/pkg/presignup"

	"context"
	"net/http"
)

const (
	incorrectCredentialsMessage = "Incorrect username or password"
	userNotConfirmedMessage     = "User is not confirmed"
	domainNotAcceptedMessage    = "Email domain is not accepted."
	userConfirmedMessage        = "The user account has been confirmed"
	passwordResetMessage        = "Password has been reset"
	userNotFoundMessage         = "User not found"
	missingTokenMessage         = "Missing token"
	invalidTokenMessage         = "Invalid token"
	loggedOutMessage            = "User has been logged out"
)

// providerFailure wraps an unrecognized provider error into the
// "{errorKind}: {message}" 500 envelope.
func providerFailure(err error) *errors.MessageError {
	return &errors.MessageError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

func badRequest(message string) *errors.MessageError {
	return &errors.MessageError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func signUpService(ctx context.Context, idp cognito.Api, cfg *config.Config, payload AuthRequest, log *logger.Logger) (*SignUpResponse, *errors.MessageError) {
	gate := presignup.NewGate(cfg.AutoConfirmedEmails, cfg.AcceptedEmailDomains)
	decision, gateErr := gate.Evaluate(payload.Email)
	if gateErr != nil {
		log.PrintfWarning("Rejected sign up for email %s: %s", payload.Email, gateErr)
		return nil, badRequest(domainNotAcceptedMessage)
	}

	result, err := idp.SignUp(ctx, payload.Email, payload.Password)
	if err != nil {
		log.PrintfError("Error during signing up a user with the email %s: %s", payload.Email, err)
		providerErr, ok := cognito.AsError(err)
		if !ok {
			return nil, providerFailure(err)
		}
		switch providerErr.Kind {
		case cognito.KindUsernameExists, cognito.KindInvalidPassword:
			return nil, badRequest(providerErr.Message)
		case cognito.KindLambdaValidation:
			// The pool-side registration trigger rejected the address.
			return nil, badRequest(domainNotAcceptedMessage)
		default:
			return nil, providerFailure(providerErr)
		}
	}

	response := &SignUpResponse{
		UserSub:             result.UserSub,
		UserConfirmed:       result.UserConfirmed,
		CodeDeliveryDetails: toCodeDeliveryDetailsResponse(result.CodeDeliveryDetails),
	}

	if decision.AutoConfirm && !result.UserConfirmed {
		if err := idp.AdminConfirmSignUp(ctx, payload.Email); err != nil {
			log.PrintfError("Error during auto-confirming the user with the email %s: %s", payload.Email, err)
			return nil, providerFailure(err)
		}
		response.UserConfirmed = true
		response.CodeDeliveryDetails = nil
	}

	// Without a verified address the password-reset flow would refuse the
	// account, since it never goes through the confirmation code.
	if decision.AutoVerifyEmail {
		if err := idp.AdminVerifyEmail(ctx, payload.Email); err != nil {
			log.PrintfError("Error during auto-verifying the email %s: %s", payload.Email, err)
			return nil, providerFailure(err)
		}
	}

	log.Printf("A user account for the email address %s has been successfully created", payload.Email)
	return response, nil
}

func confirmSignUpService(ctx context.Context, idp cognito.Api, payload ConfirmSignUpRequest, log *logger.Logger) (*MessageResponse, *errors.MessageError) {
	if err := idp.ConfirmSignUp(ctx, payload.Email, payload.ConfirmationCode); err != nil {
		log.PrintfError("Error during confirming sign up for a user with the email %s: %s", payload.Email, err)
		providerErr, ok := cognito.AsError(err)
		if !ok {
			return nil, providerFailure(err)
		}
		switch providerErr.Kind {
		case cognito.KindUserNotFound, cognito.KindNotAuthorized, cognito.KindCodeMismatch:
			return nil, badRequest(providerErr.Message)
		default:
			return nil, providerFailure(providerErr)
		}
	}

	return &MessageResponse{Message: userConfirmedMessage}, nil
}

// loginService returns the token body and the refresh token separately; the
// controller moves the refresh token into the response cookie.
func loginService(ctx context.Context, idp cognito.Api, payload AuthRequest, log *logger.Logger) (*AuthResponse, string, *errors.MessageError) {
	result, err := idp.Login(ctx, payload.Email, payload.Password)
	if err != nil {
		log.PrintfError("Error during logging in a user with the email %s: %s", payload.Email, err)
		providerErr, ok := cognito.AsError(err)
		if !ok {
			return nil, "", providerFailure(err)
		}
		switch providerErr.Kind {
		case cognito.KindUserNotConfirmed:
			return nil, "", &errors.MessageError{
				Code:    http.StatusConflict,
				Message: userNotConfirmedMessage,
			}
		case cognito.KindNotAuthorized, cognito.KindUserNotFound:
			// Indistinguishable on purpose, to avoid user enumeration.
			return nil, "", badRequest(incorrectCredentialsMessage)
		default:
			return nil, "", providerFailure(providerErr)
		}
	}
	if result == nil {
		return nil, "", badRequest(incorrectCredentialsMessage)
	}

	log.Printf("Logged in user with the email %s", payload.Email)
	return &AuthResponse{
		Token:       result.IdToken,
		ExpiresIn:   result.ExpiresIn,
		AccessToken: result.AccessToken,
	}, result.RefreshToken, nil
}

func refreshService(ctx context.Context, idp cognito.Api, refreshToken string, log *logger.Logger) (*AuthResponse, *errors.MessageError) {
	result, err := idp.Refresh(ctx, refreshToken)
	if err != nil {
		log.PrintfError("Error during refreshing tokens: %s", err)
		providerErr, ok := cognito.AsError(err)
		if !ok {
			return nil, providerFailure(err)
		}
		if providerErr.Kind == cognito.KindNotAuthorized {
			return nil, &errors.MessageError{
				Code:    http.StatusUnauthorized,
				Message: invalidTokenMessage,
			}
		}
		return nil, providerFailure(providerErr)
	}
	if result == nil {
		log.PrintfError("Token refresh yielded no authentication result")
		return nil, &errors.MessageError{
			Code:    http.StatusInternalServerError,
			Message: "InternalError: missing authentication result",
		}
	}

	return &AuthResponse{
		Token:       result.IdToken,
		ExpiresIn:   result.ExpiresIn,
		AccessToken: result.AccessToken,
	}, nil
}

func forgotPasswordService(ctx context.Context, idp cognito.Api, payload ForgotPasswordRequest, log *logger.Logger) (*ForgotPasswordResponse, *errors.MessageError) {
	details, err := idp.ForgotPassword(ctx, payload.Email)
	if err != nil {
		log.PrintfError("Error during a forgot password request for the email %s: %s", payload.Email, err)
		providerErr, ok := cognito.AsError(err)
		if !ok {
			return nil, providerFailure(err)
		}
		switch providerErr.Kind {
		case cognito.KindUserNotFound:
			return nil, badRequest(userNotFoundMessage)
		case cognito.KindInvalidParameter:
			return nil, badRequest(providerErr.Message)
		default:
			return nil, providerFailure(providerErr)
		}
	}

	return &ForgotPasswordResponse{
		CodeDeliveryDetails: toCodeDeliveryDetailsResponse(details),
	}, nil
}

func confirmForgotPasswordService(ctx context.Context, idp cognito.Api, payload ConfirmForgotPasswordRequest, log *logger.Logger) (*MessageResponse, *errors.MessageError) {
	if err := idp.ConfirmForgotPassword(ctx, payload.Email, payload.Password, payload.ConfirmationCode); err != nil {
		log.PrintfError("Error during a forgot password confirmation for the email %s: %s", payload.Email, err)
		providerErr, ok := cognito.AsError(err)
		if !ok {
			return nil, providerFailure(err)
		}
		switch providerErr.Kind {
		case cognito.KindUserNotFound:
			return nil, badRequest(userNotFoundMessage)
		case cognito.KindInvalidPassword, cognito.KindCodeMismatch, cognito.KindCodeExpired, cognito.KindLimitExceeded:
			return nil, badRequest(providerErr.Message)
		default:
			return nil, providerFailure(providerErr)
		}
	}

	return &MessageResponse{Message: passwordResetMessage}, nil
}

func toCodeDeliveryDetailsResponse(details *cognito.CodeDeliveryDetails) *CodeDeliveryDetailsResponse {
	if details == nil {
		return nil
	}
	return &CodeDeliveryDetailsResponse{
		DeliveryMedium: details.DeliveryMedium,
		Destination:    details.Destination,
	}
}
