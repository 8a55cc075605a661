// Package support implements the six emotional-support tools: response
// tables, generators, and the dispatcher that ties them to the protocol
// layer.
package support

import (
	"context"
	"math/rand"
	"time"

	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/shared"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/infrastructure/logging"
)

// RandomSource yields random indexes for phrase selection. *rand.Rand
// satisfies it; tests substitute a seeded one.
type RandomSource interface {
	Intn(n int) int
}

// Service dispatches tool calls to the per-tool generators. It implements
// handler.ToolHandler.
type Service struct {
	sessions domain.SessionStore
	random   RandomSource
	logger   *logging.Logger
	tools    []shared.Tool
}

// Config contains the dependencies for the Service.
type Config struct {
	Sessions domain.SessionStore
	Random   RandomSource
	Logger   *logging.Logger
}

// NewService creates a Service. A nil Random falls back to a time-seeded
// source and a nil Logger to a no-op logger; Sessions is required.
func NewService(cfg Config) *Service {
	if cfg.Random == nil {
		cfg.Random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	return &Service{
		sessions: cfg.Sessions,
		random:   cfg.Random,
		logger:   cfg.Logger,
		tools:    supportTools(),
	}
}

// ListTools returns the fixed, ordered tool registry.
func (s *Service) ListTools(ctx context.Context) ([]shared.Tool, error) {
	return s.tools, nil
}

// CallTool executes a tool and wraps the outcome as a single text content
// block. Business failures, including an unknown tool name, come back as
// text beginning "Error: " inside a normal result; callers check the text,
// not a failure flag.
func (s *Service) CallTool(ctx context.Context, name string, arguments map[string]interface{}) ([]shared.Content, error) {
	text, err := s.Dispatch(ctx, name, arguments)
	if err != nil {
		s.logger.Warn("tool call failed", logging.Fields{"tool": name, "error": err.Error()})
		return []shared.Content{shared.NewTextContent("Error: " + err.Error())}, nil
	}
	return []shared.Content{shared.NewTextContent(text)}, nil
}

// Dispatch routes a call to its generator and returns the raw response
// text. The only possible error is *domain.UnknownToolError; malformed
// arguments degrade to table fallbacks instead of failing.
func (s *Service) Dispatch(ctx context.Context, name string, arguments map[string]interface{}) (string, error) {
	if arguments == nil {
		arguments = map[string]interface{}{}
	}

	switch name {
	case ToolRequestEmotionalSupport:
		args := parseEmotionalSupportArgs(arguments)
		s.recordSession(ctx, emotionalSupportType(args.SupportType), args.Mood, nil)
		return renderEmotionalSupport(args), nil

	case ToolCrisisIntervention:
		args := parseCrisisArgs(arguments)
		s.recordSession(ctx, domain.SupportTypeCrisis, args.CrisisLevel, args.ImmediateConcerns)
		return renderCrisisIntervention(args), nil

	case ToolDailyCheckIn:
		return renderDailyCheckIn(parseCheckInArgs(arguments), s.random), nil

	case ToolGetCopingStrategies:
		return renderCopingStrategies(parseCopingArgs(arguments)), nil

	case ToolPositiveAffirmations:
		return renderAffirmations(parseAffirmationArgs(arguments)), nil

	case ToolPeerSupportConnection:
		return renderPeerSupport(parsePeerArgs(arguments)), nil

	default:
		return "", domain.NewUnknownToolError(name)
	}
}

// recordSession stores a write-only session record. Store failures are
// logged and swallowed: session bookkeeping never affects the response.
func (s *Service) recordSession(ctx context.Context, supportType domain.SupportType, mood string, concerns []string) {
	if s.sessions == nil {
		return
	}
	session := domain.NewSupportSession(supportType, mood, concerns)
	if err := s.sessions.AddSession(ctx, session); err != nil {
		s.logger.Error("failed to store support session", logging.Fields{"session_id": session.ID, "error": err.Error()})
		return
	}
	s.logger.Debug("support session opened", logging.Fields{
		"session_id":   session.ID,
		"support_type": string(supportType),
	})
}

// emotionalSupportType maps the optional support_type argument onto the
// session record's support type. Anything but an explicit request for
// encouragement is filed as general support.
func emotionalSupportType(supportType string) domain.SupportType {
	if supportType == "encouragement" {
		return domain.SupportTypeEncouragement
	}
	return domain.SupportTypeGeneral
}
