package middleware

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sellerdesk/backend/internal/domain/labeling"
	"github.com/sellerdesk/backend/internal/interfaces/http/dto"
)

// RequestIDKey is the gin context key under which RequestID() stores
// the request ID. The logger middleware reads the same key.
const RequestIDKey = "request_id"

// SetupValidator configures the validator with custom tags for the
// labeling enums so binding rejects unknown values before the services
// see them.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("elementtype", func(fl validator.FieldLevel) bool {
		return labeling.ElementType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("queuestatus", func(fl validator.FieldLevel) bool {
		return labeling.QueueStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("ruleoperator", func(fl validator.FieldLevel) bool {
		return labeling.Operator(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("papertype", func(fl validator.FieldLevel) bool {
		return labeling.PaperType(fl.Field().String()).IsValid()
	})
}

// FormatValidationErrors formats validation errors into a standard response
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
			})
		}
	}

	return dto.NewValidationErrorResponse(
		"Request validation failed",
		requestID,
		details,
	)
}

// HandleValidationError returns a validation error response
func HandleValidationError(c *gin.Context, err error) {
	requestID := getRequestIDFromContext(c)
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, requestID))
}

// getRequestIDFromContext extracts request ID from gin context
func getRequestIDFromContext(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	if id := c.GetHeader(RequestIDHeader); id != "" {
		return id
	}
	return ""
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "elementtype":
		return "Unknown element type"
	case "queuestatus":
		return "Unknown queue status"
	case "ruleoperator":
		return "Unknown rule operator"
	case "papertype":
		return "Unknown paper type"
	default:
		return "Invalid value"
	}
}
