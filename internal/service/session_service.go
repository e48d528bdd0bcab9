package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/internal/obs"
	"partner-trust-platform/pkg/apperror"
	"partner-trust-platform/pkg/ids"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// resetTokenTTL is how long a password reset token stays valid.
const resetTokenTTL = 15 * time.Minute

// SessionServiceImpl implements ports.SessionService: login, step-up
// verification, logout and the password reset flow. Every state change lands
// in the audit ledger before the call returns.
type SessionServiceImpl struct {
	identityRepo ports.IdentityRepository
	sessions     ports.SessionStore
	auditSvc     ports.AuditService
	hashSvc      ports.HashService
	encSvc       ports.EncryptionService
	tokenSvc     ports.TokenService
	stepUpSvc    ports.StepUpService
	log          zerolog.Logger
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(
	identityRepo ports.IdentityRepository,
	sessions ports.SessionStore,
	auditSvc ports.AuditService,
	hashSvc ports.HashService,
	encSvc ports.EncryptionService,
	tokenSvc ports.TokenService,
	stepUpSvc ports.StepUpService,
	log zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		identityRepo: identityRepo,
		sessions:     sessions,
		auditSvc:     auditSvc,
		hashSvc:      hashSvc,
		encSvc:       encSvc,
		tokenSvc:     tokenSvc,
		stepUpSvc:    stepUpSvc,
		log:          log,
	}
}

// Login validates credentials and opens a session. A platform admin session
// starts unverified: it cannot pass sensitive gates until step-up completes.
// Each failure mode writes its own ledger record before returning.
func (s *SessionServiceImpl) Login(ctx context.Context, email, password string, origin domain.RequestOrigin) (*ports.LoginResult, error) {
	email = domain.NormalizeEmail(email)

	identity, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find identity: %w", err))
	}
	if identity == nil {
		obs.LoginAttempts.WithLabelValues("failed").Inc()
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			Action:     domain.AuditActionLoginFailed,
			TargetID:   email,
			TargetType: "identity",
			Details:    `{"reason":"unknown_email"}`,
			IPAddress:  origin.IPAddress,
			UserAgent:  origin.UserAgent,
		}); err != nil {
			return nil, err
		}
		return nil, apperror.ErrInvalidCredentials()
	}

	// Status is checked before the credential: a suspended identity is
	// blocked outright, whatever password it presents.
	if !identity.IsActive() {
		obs.LoginAttempts.WithLabelValues("blocked").Inc()
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			ActorID:    &identity.ID,
			ActorRole:  string(identity.Role),
			Action:     domain.AuditActionLoginBlocked,
			TargetID:   identity.ID.String(),
			TargetType: "identity",
			Details:    fmt.Sprintf(`{"status":%q}`, identity.Status),
			IPAddress:  origin.IPAddress,
			UserAgent:  origin.UserAgent,
		}); err != nil {
			return nil, err
		}
		return nil, apperror.ErrAccountInactive()
	}

	valid, err := s.hashSvc.Verify(password, identity.PasswordHash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		obs.LoginAttempts.WithLabelValues("failed").Inc()
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			ActorID:    &identity.ID,
			ActorRole:  string(identity.Role),
			Action:     domain.AuditActionLoginFailed,
			TargetID:   identity.ID.String(),
			TargetType: "identity",
			Details:    `{"reason":"bad_password"}`,
			IPAddress:  origin.IPAddress,
			UserAgent:  origin.UserAgent,
		}); err != nil {
			return nil, err
		}
		return nil, apperror.ErrInvalidCredentials()
	}

	session := &domain.Session{
		ID:             ids.New(),
		IdentityID:     identity.ID,
		Role:           identity.Role,
		RequiresStepUp: identity.RequiresStepUp(),
		StepUpVerified: false,
		CreatedAt:      time.Now().UTC(),
	}

	token, expiry, err := s.tokenSvc.Generate(session)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	session.ExpiresAt = expiry

	if err := s.sessions.Save(ctx, session, time.Until(expiry)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &identity.ID,
		ActorRole:  string(identity.Role),
		Action:     domain.AuditActionLoginSuccess,
		TargetID:   session.ID,
		TargetType: "session",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		// Without the evidence record the login does not stand.
		if _, delErr := s.sessions.Delete(ctx, session.ID); delErr != nil {
			s.log.Warn().Err(delErr).Str("session_id", session.ID).Msg("failed to roll back session")
		}
		return nil, err
	}

	obs.LoginAttempts.WithLabelValues("success").Inc()
	return &ports.LoginResult{Session: session, Token: token, Expiry: expiry}, nil
}

// VerifyStepUp checks a TOTP code and marks the session verified. The flag
// is session-scoped; concurrent sessions of the same identity each verify on
// their own.
func (s *SessionServiceImpl) VerifyStepUp(ctx context.Context, sessionID string, code string, origin domain.RequestOrigin) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get session: %w", err))
	}
	if session == nil {
		return nil, apperror.ErrInvalidToken()
	}

	identity, err := s.identityRepo.GetByID(ctx, session.IdentityID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find identity: %w", err))
	}
	if identity == nil || identity.StepUpSecretEnc == "" {
		return nil, apperror.ErrInvalidToken()
	}

	secret, err := s.encSvc.Decrypt(identity.StepUpSecretEnc)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(err)
	}

	if !s.stepUpSvc.Verify(code, secret) {
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			ActorID:    &identity.ID,
			ActorRole:  string(identity.Role),
			Action:     domain.AuditActionStepUpFailed,
			TargetID:   session.ID,
			TargetType: "session",
			IPAddress:  origin.IPAddress,
			UserAgent:  origin.UserAgent,
		}); err != nil {
			return nil, err
		}
		return nil, apperror.ErrInvalidToken()
	}

	if err := s.sessions.MarkStepUpVerified(ctx, session.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark step-up verified: %w", err))
	}
	session.StepUpVerified = true

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &identity.ID,
		ActorRole:  string(identity.Role),
		Action:     domain.AuditActionStepUpOK,
		TargetID:   session.ID,
		TargetType: "session",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return nil, err
	}

	return session, nil
}

// Logout tears down the session. It is idempotent: only an actual teardown
// writes a ledger record, repeating the call is a no-op.
func (s *SessionServiceImpl) Logout(ctx context.Context, sessionID string, origin domain.RequestOrigin) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get session: %w", err))
	}

	existed, err := s.sessions.Delete(ctx, sessionID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("delete session: %w", err))
	}
	if !existed || session == nil {
		return nil
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &session.IdentityID,
		ActorRole:  string(session.Role),
		Action:     domain.AuditActionLogout,
		TargetID:   sessionID,
		TargetType: "session",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return err
	}
	return nil
}

// RequestReset issues a single-use reset token valid for fifteen minutes.
// Only the SHA-256 hash of the token is stored. An unknown email returns
// empty values with no error so callers cannot probe for accounts.
func (s *SessionServiceImpl) RequestReset(ctx context.Context, email string, origin domain.RequestOrigin) (string, time.Time, error) {
	email = domain.NormalizeEmail(email)

	identity, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find identity: %w", err))
	}
	if identity == nil {
		s.log.Debug().Str("email", email).Msg("reset requested for unknown email")
		return "", time.Time{}, nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate reset token: %w", err))
	}
	token := hex.EncodeToString(raw)
	tokenHash := hashResetToken(token)
	expiry := time.Now().UTC().Add(resetTokenTTL)

	if err := s.identityRepo.SetResetToken(ctx, identity.ID, tokenHash, expiry); err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("store reset token: %w", err))
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &identity.ID,
		ActorRole:  string(identity.Role),
		Action:     domain.AuditActionResetRequested,
		TargetID:   identity.ID.String(),
		TargetType: "identity",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return "", time.Time{}, err
	}

	return token, expiry, nil
}

// ResetPassword consumes a reset token, replaces the credential and revokes
// every open session of the identity.
func (s *SessionServiceImpl) ResetPassword(ctx context.Context, email, token, newPassword string, origin domain.RequestOrigin) error {
	email = domain.NormalizeEmail(email)

	identity, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find identity: %w", err))
	}
	if identity == nil {
		return apperror.ErrInvalidOrExpiredToken()
	}

	if !resetTokenMatches(identity, token) {
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			ActorID:    &identity.ID,
			ActorRole:  string(identity.Role),
			Action:     domain.AuditActionResetFailed,
			TargetID:   identity.ID.String(),
			TargetType: "identity",
			IPAddress:  origin.IPAddress,
			UserAgent:  origin.UserAgent,
		}); err != nil {
			return err
		}
		return apperror.ErrInvalidOrExpiredToken()
	}

	passwordHash, err := s.hashSvc.Hash(newPassword)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	if err := s.identityRepo.UpdateCredential(ctx, identity.ID, passwordHash); err != nil {
		return apperror.InternalError(fmt.Errorf("update credential: %w", err))
	}
	if err := s.identityRepo.ClearResetToken(ctx, identity.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("clear reset token: %w", err))
	}

	// Every open session dies with the old credential, including any
	// step-up-verified ones.
	if err := s.sessions.RevokeAll(ctx, identity.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("revoke sessions: %w", err))
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &identity.ID,
		ActorRole:  string(identity.Role),
		Action:     domain.AuditActionResetSuccess,
		TargetID:   identity.ID.String(),
		TargetType: "identity",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return err
	}
	return nil
}

// InvalidateResetToken cancels an outstanding reset token. God mode only.
func (s *SessionServiceImpl) InvalidateResetToken(ctx context.Context, actor domain.Actor, targetID uuid.UUID, origin domain.RequestOrigin) error {
	if err := requireGodMode(actor); err != nil {
		return err
	}

	if err := s.identityRepo.ClearResetToken(ctx, targetID); err != nil {
		return apperror.InternalError(fmt.Errorf("clear reset token: %w", err))
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &actor.ID,
		ActorRole:  string(actor.Role),
		Action:     domain.AuditActionResetInvalidated,
		TargetID:   targetID.String(),
		TargetType: "identity",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return err
	}
	return nil
}

// EnableStepUp enrolls the actor in step-up authentication. The setup code
// must validate against the fresh secret before anything is stored, proving
// the authenticator was actually configured.
func (s *SessionServiceImpl) EnableStepUp(ctx context.Context, actor domain.Actor, setupCode string, secret string, origin domain.RequestOrigin) error {
	if actor.Status != domain.IdentityStatusActive {
		return apperror.ErrUnauthorized()
	}

	if !s.stepUpSvc.Verify(setupCode, secret) {
		return apperror.ErrInvalidToken()
	}

	secretEnc, err := s.encSvc.Encrypt(secret)
	if err != nil {
		return apperror.ErrEncryptionFailure(err)
	}

	if err := s.identityRepo.SetStepUp(ctx, actor.ID, true, secretEnc); err != nil {
		return apperror.InternalError(fmt.Errorf("enable step-up: %w", err))
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &actor.ID,
		ActorRole:  string(actor.Role),
		Action:     domain.AuditActionStepUpOn,
		TargetID:   actor.ID.String(),
		TargetType: "identity",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return err
	}
	return nil
}

// DisableStepUp turns off optional step-up for an identity. Platform admins
// can never have theirs disabled, by anyone. Disabling another identity's
// step-up requires god mode.
func (s *SessionServiceImpl) DisableStepUp(ctx context.Context, actor domain.Actor, targetID uuid.UUID, origin domain.RequestOrigin) error {
	if actor.ID != targetID {
		if err := requireGodMode(actor); err != nil {
			return err
		}
	} else if actor.Status != domain.IdentityStatusActive {
		return apperror.ErrUnauthorized()
	}

	target, err := s.identityRepo.GetByID(ctx, targetID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find identity: %w", err))
	}
	if target == nil {
		return apperror.ErrNotFound("identity")
	}
	if target.Role.RequiresStepUp() {
		return apperror.ErrUnauthorized()
	}

	if err := s.identityRepo.SetStepUp(ctx, targetID, false, ""); err != nil {
		return apperror.InternalError(fmt.Errorf("disable step-up: %w", err))
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &actor.ID,
		ActorRole:  string(actor.Role),
		Action:     domain.AuditActionStepUpOff,
		TargetID:   targetID.String(),
		TargetType: "identity",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return err
	}
	return nil
}

// hashResetToken returns the hex SHA-256 of a raw reset token.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// resetTokenMatches checks the stored hash and expiry against a presented
// token in constant time.
func resetTokenMatches(identity *domain.UserIdentity, token string) bool {
	if identity.ResetTokenHash == nil || identity.ResetTokenExpiry == nil {
		return false
	}
	if time.Now().UTC().After(*identity.ResetTokenExpiry) {
		return false
	}
	presented := hashResetToken(token)
	return subtle.ConstantTimeCompare([]byte(presented), []byte(*identity.ResetTokenHash)) == 1
}
