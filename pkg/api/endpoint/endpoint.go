package endpoint

import (
	"akurat-backend/pkg/cognito"
	"akurat-backend/pkg/config"
	"akurat-backend/pkg/logger"

	"fmt"

	"github.com/gin-gonic/gin"
)

// SetupEndpoint pulls the request payload and the shared dependencies out of
// the Gin context. The payload is present only on routes that registered a
// body validator; its zero value is returned otherwise. A non-empty error
// slice means the middleware chain is miswired and the controller should
// answer 500.
func SetupEndpoint[T any](c *gin.Context) (T, *logger.Logger, *config.Config, cognito.Api, []error) {
	var payload T
	var errs []error

	if raw, ok := c.Get("payload"); ok {
		typed, ok := raw.(T)
		if !ok {
			errs = append(errs, fmt.Errorf("payload is not of type %T", payload))
		} else {
			payload = typed
		}
	}

	var log *logger.Logger
	rawLogger, ok := c.Get("logger")
	if !ok {
		errs = append(errs, fmt.Errorf("logger not found in context"))
	} else {
		log, ok = rawLogger.(*logger.Logger)
		if !ok {
			errs = append(errs, fmt.Errorf("logger is not of type *logger.Logger"))
		}
	}

	var cfg *config.Config
	rawConfig, ok := c.Get("config")
	if !ok {
		errs = append(errs, fmt.Errorf("config not found in context"))
	} else {
		cfg, ok = rawConfig.(*config.Config)
		if !ok {
			errs = append(errs, fmt.Errorf("config is not of type *config.Config"))
		}
	}

	var idp cognito.Api
	rawIdp, ok := c.Get("idp")
	if !ok {
		errs = append(errs, fmt.Errorf("identity provider client not found in context"))
	} else {
		idp, ok = rawIdp.(cognito.Api)
		if !ok {
			errs = append(errs, fmt.Errorf("identity provider client is not of type cognito.Api"))
		}
	}

	return payload, log, cfg, idp, errs
}
