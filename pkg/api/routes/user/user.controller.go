package user

import (
	"akurat-backend/pkg/api/endpoint"
	"akurat-backend/pkg/api/errors"
	"akurat-backend/pkg/api/middleware"
	"akurat-backend/pkg/api/routes/auth"
	"akurat-backend/pkg/enum"
	"time"

	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterUserEndpoints(r *gin.RouterGroup) {
	r.Use(middleware.LoggerMiddleware("User"))
	r.Use(middleware.RateLimiterMiddleware(100, 10*time.Minute))
	r.Use(auth.AuthGuard())
	r.GET("/", listUsersController)
	r.GET("/:id", getUserController)
	r.POST("/admin-confirm", middleware.BodyValidatorMiddleware[AdminConfirmRequest](), adminConfirmController)
}

func listUsersController(c *gin.Context) {
	_, logger, _, idp, errs := endpoint.SetupEndpoint[any](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	response, err := listUsersService(c.Request.Context(), idp, logger)
	if err != nil {
		c.JSON(err.Code, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func getUserController(c *gin.Context) {
	_, logger, _, idp, errs := endpoint.SetupEndpoint[any](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	response, err := getUserService(c.Request.Context(), idp, c.Param("id"), logger)
	if err != nil {
		c.JSON(err.Code, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func adminConfirmController(c *gin.Context) {
	payload, logger, _, idp, errs := endpoint.SetupEndpoint[AdminConfirmRequest](c)
	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Details: errs,
		})
		return
	}

	response, err := adminConfirmService(c.Request.Context(), idp, payload, logger)
	if err != nil {
		c.JSON(err.Code, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
