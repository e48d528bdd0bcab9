// Package banking talks to the external banking-as-a-service provider. The
// core decides whether a call is allowed; this package only carries it out
// and hands back the provider's opaque identifiers.
package banking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"partner-trust-platform/config"
	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

// Gateway implements ports.BankingGateway over the provider's REST API.
type Gateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// NewGateway creates a banking gateway client.
func NewGateway(cfg config.BankingConfig, log zerolog.Logger) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Gateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type createProgramRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Tier      string `json:"tier"`
}

type createProgramResponse struct {
	ProgramID string `json:"program_id"`
}

// CreateProgram provisions a banking program for an approved entity.
func (g *Gateway) CreateProgram(ctx context.Context, entity *domain.ComplianceEntity) (string, error) {
	req := createProgramRequest{
		CompanyID: entity.ID.String(),
		Name:      entity.Name,
		Tier:      string(entity.Tier),
	}

	var resp createProgramResponse
	if err := g.post(ctx, "/v1/programs", req, &resp); err != nil {
		return "", fmt.Errorf("create program: %w", err)
	}

	g.log.Info().
		Str("company_id", entity.ID.String()).
		Str("program_id", resp.ProgramID).
		Msg("Banking program created")
	return resp.ProgramID, nil
}

type issueCardRequest struct {
	CardholderName string `json:"cardholder_name"`
	SpendingLimit  int64  `json:"spending_limit,omitempty"`
}

type issueCardResponse struct {
	CardID string `json:"card_id"`
}

// IssueCard issues a card under an active program.
func (g *Gateway) IssueCard(ctx context.Context, programID string, req ports.CardRequest) (string, error) {
	body := issueCardRequest{
		CardholderName: req.CardholderName,
		SpendingLimit:  req.SpendingLimit,
	}

	var resp issueCardResponse
	if err := g.post(ctx, "/v1/programs/"+programID+"/cards", body, &resp); err != nil {
		return "", fmt.Errorf("issue card: %w", err)
	}

	g.log.Info().
		Str("program_id", programID).
		Str("card_id", resp.CardID).
		Msg("Card issued")
	return resp.CardID, nil
}

// FreezeProgram suspends all card activity under the program.
func (g *Gateway) FreezeProgram(ctx context.Context, programID string, reason string) error {
	body := map[string]string{"reason": reason}
	if err := g.post(ctx, "/v1/programs/"+programID+"/freeze", body, nil); err != nil {
		return fmt.Errorf("freeze program: %w", err)
	}

	g.log.Warn().
		Str("program_id", programID).
		Str("reason", reason).
		Msg("Banking program frozen")
	return nil
}

// UnfreezeProgram lifts a freeze.
func (g *Gateway) UnfreezeProgram(ctx context.Context, programID string) error {
	if err := g.post(ctx, "/v1/programs/"+programID+"/unfreeze", nil, nil); err != nil {
		return fmt.Errorf("unfreeze program: %w", err)
	}

	g.log.Info().
		Str("program_id", programID).
		Msg("Banking program unfrozen")
	return nil
}

func (g *Gateway) post(ctx context.Context, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(payload))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
