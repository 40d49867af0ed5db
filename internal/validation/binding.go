// Package validation registers the domain validators on gin's binding
// engine.
package validation

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/quickhirelabor/quickhire/internal/domain"
)

// RegisterBindings installs the "jobstatus" and "userrole" binding tags.
// Call once at startup, before the router handles traffic.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validation: unexpected binding engine")
	}
	if err := v.RegisterValidation("jobstatus", validJobStatus); err != nil {
		return err
	}
	return v.RegisterValidation("userrole", validUserRole)
}

func validJobStatus(fl validator.FieldLevel) bool {
	return domain.JobStatus(fl.Field().String()).Valid()
}

func validUserRole(fl validator.FieldLevel) bool {
	return domain.Role(fl.Field().String()).Valid()
}
