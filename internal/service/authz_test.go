package service

import (
	"errors"
	"testing"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		role       domain.Role
		status     domain.IdentityStatus
		permission string
		wantErr    bool
	}{
		{"admin wildcard", domain.RolePlatformAdmin, domain.IdentityStatusActive, "anything:at_all", false},
		{"operator has client:view", domain.RoleOperator, domain.IdentityStatusActive, "client:view", false},
		{"operator lacks kyb:approve", domain.RoleOperator, domain.IdentityStatusActive, "kyb:approve", true},
		{"read_only lacks orders:create", domain.RoleReadOnly, domain.IdentityStatusActive, "orders:create", true},
		{"suspended admin denied", domain.RolePlatformAdmin, domain.IdentityStatusSuspended, "client:view", true},
		{"terminated owner denied", domain.RoleClientOwner, domain.IdentityStatusTerminated, "program:view_own", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := domain.Actor{ID: uuid.New(), Role: tt.role, Status: tt.status}
			err := requirePermission(actor, tt.permission)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGuards_SameGenericError(t *testing.T) {
	// All three denial paths return an identical error so a caller cannot
	// tell which check failed.
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleReadOnly, Status: domain.IdentityStatusActive}
	suspended := domain.Actor{ID: uuid.New(), Role: domain.RolePlatformAdmin, Status: domain.IdentityStatusSuspended}

	errs := []error{
		requirePermission(actor, "kyb:approve"),
		requireGodMode(actor),
		requireGodMode(suspended),
		requireStepUp(nil),
		requireStepUp(&domain.Session{RequiresStepUp: true, StepUpVerified: false}),
	}

	for _, err := range errs {
		require.Error(t, err)
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "AUTH_005", appErr.Code)
		assert.Equal(t, "Unauthorized", appErr.Message)
	}
}

func TestRequireStepUp_VerifiedSessionPasses(t *testing.T) {
	session := &domain.Session{RequiresStepUp: true, StepUpVerified: true}
	require.NoError(t, requireStepUp(session))
}

func TestRequireGodMode_ActiveAdminPasses(t *testing.T) {
	actor := domain.Actor{ID: uuid.New(), Role: domain.RolePlatformAdmin, Status: domain.IdentityStatusActive}
	require.NoError(t, requireGodMode(actor))
}
