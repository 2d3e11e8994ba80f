package cognito

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// CodeDeliveryDetails describes where a confirmation code was sent.
type CodeDeliveryDetails struct {
	DeliveryMedium string
	Destination    string
}

// SignUpResult is the outcome of a sign-up call. CodeDeliveryDetails is nil
// when no confirmation code was dispatched (auto-confirmed accounts).
type SignUpResult struct {
	UserSub             string
	UserConfirmed       bool
	CodeDeliveryDetails *CodeDeliveryDetails
}

// AuthResult carries the token set issued by the provider. RefreshToken is
// empty on token refresh, the provider does not rotate it.
type AuthResult struct {
	IdToken      string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int32
}

// User is a single record from the provider's user directory.
type User struct {
	Username      string
	Sub           string
	Email         string
	EmailVerified bool
	Enabled       bool
	Status        string
	CreatedAt     int64
	UpdatedAt     int64
}

const (
	attrSub           = "sub"
	attrEmail         = "email"
	attrEmailVerified = "email_verified"
)

func attributeValue(attrs []types.AttributeType, name string) string {
	for _, attr := range attrs {
		if aws.ToString(attr.Name) == name {
			return aws.ToString(attr.Value)
		}
	}
	return ""
}

func toUser(user types.UserType) User {
	result := User{
		Username:      aws.ToString(user.Username),
		Sub:           attributeValue(user.Attributes, attrSub),
		Email:         attributeValue(user.Attributes, attrEmail),
		EmailVerified: attributeValue(user.Attributes, attrEmailVerified) == "true",
		Enabled:       user.Enabled,
		Status:        string(user.UserStatus),
	}
	if user.UserCreateDate != nil {
		result.CreatedAt = user.UserCreateDate.UnixMilli()
	}
	if user.UserLastModifiedDate != nil {
		result.UpdatedAt = user.UserLastModifiedDate.UnixMilli()
	}
	return result
}

func toCodeDeliveryDetails(details *types.CodeDeliveryDetailsType) *CodeDeliveryDetails {
	if details == nil {
		return nil
	}
	return &CodeDeliveryDetails{
		DeliveryMedium: string(details.DeliveryMedium),
		Destination:    aws.ToString(details.Destination),
	}
}
