package cognito

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// ErrorKind is the tagged variant of a provider error. Handlers match on it
// exhaustively instead of probing concrete SDK exception types.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUserNotFound
	KindNotAuthorized
	KindUserNotConfirmed
	KindUsernameExists
	KindCodeMismatch
	KindCodeExpired
	KindInvalidPassword
	KindInvalidParameter
	KindLimitExceeded
	KindLambdaValidation
)

// Error is the provider error surfaced to handlers. Name and Message keep the
// provider's own wording for the "{errorKind}: {message}" 500 envelope.
type Error struct {
	Kind    ErrorKind
	Name    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// AsError unwraps err into the tagged provider error type.
func AsError(err error) (*Error, bool) {
	var providerErr *Error
	if errors.As(err, &providerErr) {
		return providerErr, true
	}
	return nil, false
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	kind := KindUnknown
	var userNotFound *types.UserNotFoundException
	var notAuthorized *types.NotAuthorizedException
	var userNotConfirmed *types.UserNotConfirmedException
	var usernameExists *types.UsernameExistsException
	var codeMismatch *types.CodeMismatchException
	var codeExpired *types.ExpiredCodeException
	var invalidPassword *types.InvalidPasswordException
	var invalidParameter *types.InvalidParameterException
	var limitExceeded *types.LimitExceededException
	var lambdaValidation *types.UserLambdaValidationException

	switch {
	case errors.As(err, &userNotFound):
		kind = KindUserNotFound
	case errors.As(err, &notAuthorized):
		kind = KindNotAuthorized
	case errors.As(err, &userNotConfirmed):
		kind = KindUserNotConfirmed
	case errors.As(err, &usernameExists):
		kind = KindUsernameExists
	case errors.As(err, &codeMismatch):
		kind = KindCodeMismatch
	case errors.As(err, &codeExpired):
		kind = KindCodeExpired
	case errors.As(err, &invalidPassword):
		kind = KindInvalidPassword
	case errors.As(err, &invalidParameter):
		kind = KindInvalidParameter
	case errors.As(err, &limitExceeded):
		kind = KindLimitExceeded
	case errors.As(err, &lambdaValidation):
		kind = KindLambdaValidation
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &Error{
			Kind:    kind,
			Name:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
		}
	}

	return &Error{
		Kind:    KindUnknown,
		Name:    "InternalError",
		Message: err.Error(),
	}
}
