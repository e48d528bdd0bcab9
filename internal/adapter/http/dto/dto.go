package dto

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login. RequiresStepUp
// tells the client whether the session is usable yet.
type LoginResponse struct {
	Token          string `json:"token"`
	Expiry         int64  `json:"expiry"` // Unix timestamp
	RequiresStepUp bool   `json:"requires_step_up"`
	StepUpVerified bool   `json:"step_up_verified"`
}

// StepUpVerifyRequest carries the TOTP code for step-up verification.
type StepUpVerifyRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

// StepUpSetupResponse returns a freshly generated TOTP secret and its
// provisioning URL. The secret is shown exactly once.
type StepUpSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

// StepUpEnableRequest confirms possession of the secret before it is stored.
type StepUpEnableRequest struct {
	Secret    string `json:"secret" binding:"required"`
	SetupCode string `json:"setup_code" binding:"required,len=6,numeric"`
}

// ResetRequestRequest asks for a password reset token.
type ResetRequestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest redeems a reset token.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// KYBSubmitRequest is the request body for business verification submission.
type KYBSubmitRequest struct {
	BusinessName string `json:"business_name" binding:"required,min=1,max=200"`
	TaxID        string `json:"tax_id" binding:"required,max=50"`
	Address      string `json:"address" binding:"required,max=500"`
	OwnerName    string `json:"owner_name" binding:"required,max=200"`
	Email        string `json:"email" binding:"required,email"`
}

// KYBRejectRequest is the request body for rejecting a submission.
type KYBRejectRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// IssueCardRequest is the request body for card issuance.
type IssueCardRequest struct {
	CardholderName string `json:"cardholder_name" binding:"required,min=1,max=200"`
	SpendingLimit  int64  `json:"spending_limit,omitempty" binding:"omitempty,gt=0"`
}

// ProgramResponse returns the provider identifier of a provisioned program.
type ProgramResponse struct {
	ProgramID string `json:"program_id"`
}

// CardResponse returns the provider identifier of an issued card.
type CardResponse struct {
	CardID string `json:"card_id"`
}

// BillingEventRequest is the billing gateway webhook payload.
type BillingEventRequest struct {
	EntityID string `json:"entity_id" binding:"required,uuid"`
	Event    string `json:"event" binding:"required"`
}

// AuditRecordResponse is one ledger entry in API form.
type AuditRecordResponse struct {
	ID         string `json:"id"`
	ActorID    string `json:"actor_id,omitempty"`
	ActorRole  string `json:"actor_role,omitempty"`
	Action     string `json:"action"`
	TargetID   string `json:"target_id,omitempty"`
	TargetType string `json:"target_type,omitempty"`
	Details    string `json:"details,omitempty"`
	IPAddress  string `json:"ip_address,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// AuditListResponse wraps a ledger read.
type AuditListResponse struct {
	Items []AuditRecordResponse `json:"items"`
	Count int                   `json:"count"`
}
