package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// Api is the identity-provider surface the handlers depend on. Every method
// is a single synchronous round-trip; failed calls return a tagged *Error.
type Api interface {
	SignUp(ctx context.Context, email, password string) (*SignUpResult, error)
	ConfirmSignUp(ctx context.Context, email, confirmationCode string) error
	AdminConfirmSignUp(ctx context.Context, email string) error
	AdminVerifyEmail(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) (*CodeDeliveryDetails, error)
	ConfirmForgotPassword(ctx context.Context, email, password, confirmationCode string) error
	ListUsers(ctx context.Context) ([]User, error)
	UserBySub(ctx context.Context, sub string) (*User, error)
	GetUser(ctx context.Context, accessToken string) (*User, error)
}

type Client struct {
	idp      *cognitoidentityprovider.Client
	clientID string
	poolID   string
}

func New(awsCfg aws.Config, clientID, poolID string) *Client {
	return &Client{
		idp:      cognitoidentityprovider.NewFromConfig(awsCfg),
		clientID: clientID,
		poolID:   poolID,
	}
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*SignUpResult, error) {
	out, err := c.idp.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(email),
		Password: aws.String(password),
	})
	if err != nil {
		return nil, translate(err)
	}

	return &SignUpResult{
		UserSub:             aws.ToString(out.UserSub),
		UserConfirmed:       out.UserConfirmed,
		CodeDeliveryDetails: toCodeDeliveryDetails(out.CodeDeliveryDetails),
	}, nil
}

func (c *Client) ConfirmSignUp(ctx context.Context, email, confirmationCode string) error {
	_, err := c.idp.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(c.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(confirmationCode),
	})
	return translate(err)
}

func (c *Client) AdminConfirmSignUp(ctx context.Context, email string) error {
	_, err := c.idp.AdminConfirmSignUp(ctx, &cognitoidentityprovider.AdminConfirmSignUpInput{
		UserPoolId: aws.String(c.poolID),
		Username:   aws.String(email),
	})
	return translate(err)
}

// AdminVerifyEmail marks the account's email address as verified, so flows
// requiring a verified address (password reset) work for accounts that never
// received a confirmation code.
func (c *Client) AdminVerifyEmail(ctx context.Context, email string) error {
	_, err := c.idp.AdminUpdateUserAttributes(ctx, &cognitoidentityprovider.AdminUpdateUserAttributesInput{
		UserPoolId: aws.String(c.poolID),
		Username:   aws.String(email),
		UserAttributes: []types.AttributeType{{
			Name:  aws.String(attrEmailVerified),
			Value: aws.String("true"),
		}},
	})
	return translate(err)
}

// Login runs the password authentication flow. A nil result with a nil error
// means the provider answered without issuing tokens (for example a pending
// challenge); callers treat that as failed credentials.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	out, err := c.idp.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, translate(err)
	}
	if out.AuthenticationResult == nil {
		return nil, nil
	}

	return toAuthResult(out.AuthenticationResult), nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	out, err := c.idp.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": refreshToken,
		},
	})
	if err != nil {
		return nil, translate(err)
	}
	if out.AuthenticationResult == nil {
		return nil, nil
	}

	return toAuthResult(out.AuthenticationResult), nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*CodeDeliveryDetails, error) {
	out, err := c.idp.ForgotPassword(ctx, &cognitoidentityprovider.ForgotPasswordInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(email),
	})
	if err != nil {
		return nil, translate(err)
	}
	return toCodeDeliveryDetails(out.CodeDeliveryDetails), nil
}

func (c *Client) ConfirmForgotPassword(ctx context.Context, email, password, confirmationCode string) error {
	_, err := c.idp.ConfirmForgotPassword(ctx, &cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(c.clientID),
		Username:         aws.String(email),
		Password:         aws.String(password),
		ConfirmationCode: aws.String(confirmationCode),
	})
	return translate(err)
}

// ListUsers returns the provider's default single page of the user pool.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	out, err := c.idp.ListUsers(ctx, &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(c.poolID),
	})
	if err != nil {
		return nil, translate(err)
	}

	users := make([]User, 0, len(out.Users))
	for _, user := range out.Users {
		users = append(users, toUser(user))
	}
	return users, nil
}

// UserBySub looks up a user by its sub attribute through a filtered list
// call. The filter semantics are the provider's; a nil result means no match.
func (c *Client) UserBySub(ctx context.Context, sub string) (*User, error) {
	out, err := c.idp.ListUsers(ctx, &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(c.poolID),
		Filter:     aws.String(fmt.Sprintf("sub = %q", sub)),
	})
	if err != nil {
		return nil, translate(err)
	}
	if len(out.Users) == 0 {
		return nil, nil
	}

	user := toUser(out.Users[0])
	return &user, nil
}

// GetUser resolves the account behind an access token on the provider side.
// The auth guard falls back to it when the pool's signing keys cannot be
// fetched.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	out, err := c.idp.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return nil, translate(err)
	}

	// The provider exposes no status or enabled flag on this call; a valid
	// access token implies both.
	return &User{
		Username:      aws.ToString(out.Username),
		Sub:           attributeValue(out.UserAttributes, attrSub),
		Email:         attributeValue(out.UserAttributes, attrEmail),
		EmailVerified: attributeValue(out.UserAttributes, attrEmailVerified) == "true",
	}, nil
}

func toAuthResult(result *types.AuthenticationResultType) *AuthResult {
	return &AuthResult{
		IdToken:      aws.ToString(result.IdToken),
		AccessToken:  aws.ToString(result.AccessToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		ExpiresIn:    result.ExpiresIn,
	}
}
