package auth

import (
	"akurat-backend/pkg/api/endpoint"
	"akurat-backend/pkg/api/errors"
	"akurat-backend/pkg/api/middleware"
	"akurat-backend/pkg/enum"
	"time"

	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterAuthEndpoints(r *gin.RouterGroup) {
	r.Use(middleware.LoggerMiddleware("Auth"))
	r.POST("/signup", middleware.RateLimiterMiddleware(10, 10*time.Minute), middleware.BodyValidatorMiddleware[AuthRequest](), signUpController)
	r.POST("/confirm-signup", middleware.RateLimiterMiddleware(25, 10*time.Minute), middleware.BodyValidatorMiddleware[ConfirmSignUpRequest](), confirmSignUpController)
	r.POST("/login", middleware.RateLimiterMiddleware(10, 10*time.Minute), middleware.BodyValidatorMiddleware[AuthRequest](), loginController)
	r.GET("/logout", middleware.RateLimiterMiddleware(100, 10*time.Minute), logoutController)
	r.GET("/refresh", middleware.RateLimiterMiddleware(25, 10*time.Minute), refreshController)
	r.POST("/forgot", middleware.RateLimiterMiddleware(10, 10*time.Minute), middleware.BodyValidatorMiddleware[ForgotPasswordRequest](), forgotPasswordController)
	r.POST("/confirm-forgot", middleware.RateLimiterMiddleware(10, 10*time.Minute), middleware.BodyValidatorMiddleware[ConfirmForgotPasswordRequest](), confirmForgotPasswordController)
}

func signUpController(c *gin.Context) {
	payload, logger, cfg, idp, errs := endpoint.SetupEndpoint[AuthRequest](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	response, err := signUpService(c.Request.Context(), idp, cfg, payload, logger)
	if err != nil {
		c.JSON(err.Code, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func confirmSignUpController(c *gin.Context) {
	payload, logger, _, idp, errs := endpoint.SetupEndpoint[ConfirmSignUpRequest](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	response, err := confirmSignUpService(c.Request.Context(), idp, payload, logger)
	if err != nil {
		c.JSON(err.Code, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func loginController(c *gin.Context) {
	payload, logger, cfg, idp, errs := endpoint.SetupEndpoint[AuthRequest](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	response, refreshToken, err := loginService(c.Request.Context(), idp, payload, logger)
	if err != nil {
		c.JSON(err.Code, err)
		return
	}

	maxAge := cfg.RefreshTokenValidityDays * 24 * 60 * 60
	setRefreshTokenCookie(c, cookiePolicyFromConfig(cfg), refreshToken, maxAge)

	c.JSON(http.StatusOK, response)
}

func logoutController(c *gin.Context) {
	_, logger, cfg, _, errs := endpoint.SetupEndpoint[any](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	// Stateless: the provider is never contacted, the client just discards
	// its cookie. Repeated calls behave identically.
	clearRefreshTokenCookie(c, cookiePolicyFromConfig(cfg))
	logger.PrintfDebug("Cleared refresh token cookie")

	c.JSON(http.StatusOK, MessageResponse{Message: loggedOutMessage})
}

func refreshController(c *gin.Context) {
	_, logger, _, idp, errs := endpoint.SetupEndpoint[any](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	refreshToken := refreshTokenFromRequest(c)
	if refreshToken == "" {
		c.JSON(http.StatusBadRequest, errors.MessageError{
			Code:    http.StatusBadRequest,
			Message: missingTokenMessage,
		})
		return
	}

	// The refresh token is not rotated, so no new cookie is issued here.
	response, err := refreshService(c.Request.Context(), idp, refreshToken, logger)
	if err != nil {
		c.JSON(err.Code, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func forgotPasswordController(c *gin.Context) {
	payload, logger, _, idp, errs := endpoint.SetupEndpoint[ForgotPasswordRequest](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	response, err := forgotPasswordService(c.Request.Context(), idp, payload, logger)
	if err != nil {
		c.JSON(err.Code, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func confirmForgotPasswordController(c *gin.Context) {
	payload, logger, _, idp, errs := endpoint.SetupEndpoint[ConfirmForgotPasswordRequest](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	response, err := confirmForgotPasswordService(c.Request.Context(), idp, payload, logger)
	if err != nil {
		c.JSON(err.Code, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
