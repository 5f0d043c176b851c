package handler

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs custom binding rules on gin's validator
// engine. Call once before routes are served.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("mongodsn", validMongoDSN)
	}
}

// validMongoDSN accepts MongoDB connection strings in either scheme.
// Applied only to cluster executor requests, where the driver must parse
// the URI; the saved-connection registry stores strings verbatim and
// never checks shape beyond non-emptiness.
// Surrounding whitespace is tolerated here and trimmed downstream.
func validMongoDSN(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	return strings.HasPrefix(s, "mongodb://") || strings.HasPrefix(s, "mongodb+srv://")
}
