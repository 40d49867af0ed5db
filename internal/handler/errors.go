package handler

import (
	"errors"

	"github.com/quickhirelabor/quickhire/internal/ecode"
	"github.com/quickhirelabor/quickhire/internal/lifecycle"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/service"
)

// toException maps service and lifecycle errors onto the response
// envelope. Unknown errors become opaque 500s.
func toException(err error) *resp.Exception {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		return resp.WithCode(ecode.JobNotFound, ecode.Text(ecode.JobNotFound))
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return resp.WithCode(ecode.InvalidTransition, ecode.Text(ecode.InvalidTransition))
	case errors.Is(err, lifecycle.ErrAlreadyTerminal):
		return resp.WithCode(ecode.AlreadyTerminal, ecode.Text(ecode.AlreadyTerminal))

	case errors.Is(err, service.ErrNotFound):
		return resp.NotFound(ecode.Text(ecode.NotFound))
	case errors.Is(err, service.ErrForbidden):
		return resp.Forbidden(ecode.Text(ecode.AccessDenied))
	case errors.Is(err, service.ErrEmailTaken):
		return resp.Conflict("Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		return resp.UnAuthorized("Invalid email or password")
	case errors.Is(err, service.ErrUserDisabled):
		return resp.WithCode(ecode.UserDisabled, ecode.Text(ecode.UserDisabled))
	case errors.Is(err, service.ErrInvalidToken):
		return resp.UnAuthorized("Invalid or expired token")
	case errors.Is(err, service.ErrDuplicatePayment):
		return resp.WithCode(ecode.DuplicatePayment, ecode.Text(ecode.DuplicatePayment))
	case errors.Is(err, service.ErrDuplicateRating):
		return resp.WithCode(ecode.DuplicateRating, ecode.Text(ecode.DuplicateRating))
	case errors.Is(err, service.ErrJobNotCompleted):
		return resp.Conflict("Job is not completed")
	case errors.Is(err, service.ErrJobNotAssigned):
		return resp.Conflict("Job has no assigned laborer")
	}
	return resp.InternalServer(ecode.Text(ecode.ServerErr))
}
