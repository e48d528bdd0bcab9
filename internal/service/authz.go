package service

import (
	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/pkg/apperror"
)

// Authorization guards. Every guard returns the same generic error so a
// caller cannot tell which check failed (role, status or step-up).

// requirePermission checks actor status and permission in one gate.
func requirePermission(actor domain.Actor, permission string) error {
	if actor.Status != domain.IdentityStatusActive {
		return apperror.ErrUnauthorized()
	}
	if !actor.Role.HasPermission(permission) {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// requireGodMode restricts an operation to active platform admins.
func requireGodMode(actor domain.Actor) error {
	if actor.Status != domain.IdentityStatusActive || actor.Role != domain.RolePlatformAdmin {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// requireStepUp checks that the session has completed step-up verification.
// Sensitive operations call this in addition to the permission gate; a valid
// password-only session is not enough.
func requireStepUp(session *domain.Session) error {
	if session == nil || !session.StepUpVerified {
		return apperror.ErrUnauthorized()
	}
	return nil
}
