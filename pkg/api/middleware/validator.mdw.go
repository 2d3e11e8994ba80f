package middleware

import (
	apierrors "akurat-backend/pkg/api/errors"

	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	ut "github.com/go-playground/universal-translator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	trans, _ = ut.New(english, english).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}
}

// BodyValidatorMiddleware enforces the declared request schema before the
// handler runs: unknown fields, missing required fields, and format
// violations are all rejected with 400 and the gateway's message phrasing.
// The decoded payload is stored in the context under "payload".
func BodyValidatorMiddleware[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload T

		decoder := json.NewDecoder(c.Request.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&payload); err != nil {
			rejectBody(c, decodeErrorMessage(err))
			return
		}

		if err := validate.Struct(payload); err != nil {
			var validationErrors validator.ValidationErrors
			if !errors.As(err, &validationErrors) {
				rejectBody(c, "Invalid request body")
				return
			}
			rejectBody(c, validationErrorMessage(validationErrors))
			return
		}

		c.Set("payload", payload)
		c.Next()
	}
}

func decodeErrorMessage(err error) string {
	const unknownFieldPrefix = "json: unknown field "
	if strings.HasPrefix(err.Error(), unknownFieldPrefix) {
		field := strings.Trim(strings.TrimPrefix(err.Error(), unknownFieldPrefix), `"`)
		return fmt.Sprintf("object instance has properties which are not allowed by the schema ([%q])", field)
	}
	return "Invalid request body"
}

func validationErrorMessage(validationErrors validator.ValidationErrors) string {
	var missing []string
	var details []string
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			missing = append(missing, strconv.Quote(fieldErr.Field()))
		} else {
			details = append(details, fieldErr.Translate(trans))
		}
	}
	if len(missing) > 0 {
		return fmt.Sprintf("object has missing required properties ([%s])", strings.Join(missing, ","))
	}
	return fmt.Sprintf("instance failed to match the declared schema: %s", strings.Join(details, "; "))
}

func rejectBody(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.MessageError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
	c.Abort()
}
