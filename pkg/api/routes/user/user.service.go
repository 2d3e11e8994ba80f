package user

import (
	"akurat-backend/pkg/api/errors"
	"akurat-backend/pkg/cognito"
	"akurat-backend/pkg/logger"

	"context"
	"fmt"
	"net/http"
)

const userConfirmedMessage = "The user account has been confirmed"

func providerFailure(err error) *errors.MessageError {
	return &errors.MessageError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// listUsersService returns the single default page the provider yields.
func listUsersService(ctx context.Context, idp cognito.Api, log *logger.Logger) (*UserListResponse, *errors.MessageError) {
	users, err := idp.ListUsers(ctx)
	if err != nil {
		log.PrintfError("Error during fetching users: %s", err)
		return nil, providerFailure(err)
	}

	items := make([]UserResponse, 0, len(users))
	for _, record := range users {
		items = append(items, toUserResponse(record))
	}
	return &UserListResponse{Items: items}, nil
}

func getUserService(ctx context.Context, idp cognito.Api, sub string, log *logger.Logger) (*UserResponse, *errors.MessageError) {
	record, err := idp.UserBySub(ctx, sub)
	if err != nil {
		log.PrintfError("Error during fetching a user with sub %s: %s", sub, err)
		return nil, providerFailure(err)
	}
	if record == nil {
		return nil, &errors.MessageError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Resource with an id [%s] does not exist", sub),
		}
	}

	response := toUserResponse(*record)
	return &response, nil
}

// adminConfirmService forces an account into the confirmed state, bypassing
// the confirmation-code flow. Intended for operator-created accounts.
func adminConfirmService(ctx context.Context, idp cognito.Api, payload AdminConfirmRequest, log *logger.Logger) (*MessageResponse, *errors.MessageError) {
	if err := idp.AdminConfirmSignUp(ctx, payload.Email); err != nil {
		log.PrintfError("Error during confirming sign up for a user with the email %s: %s", payload.Email, err)
		return nil, providerFailure(err)
	}
	return &MessageResponse{Message: userConfirmedMessage}, nil
}

func toUserResponse(record cognito.User) UserResponse {
	return UserResponse{
		Username:      record.Username,
		Sub:           record.Sub,
		Email:         record.Email,
		EmailVerified: record.EmailVerified,
		Enabled:       record.Enabled,
		Status:        record.Status,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
