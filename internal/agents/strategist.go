// Package agents runs the analyst persona that writes the investment report.
package agents

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	"strategist/internal/config"
	"strategist/internal/models"
	strategisttools "strategist/internal/tools"
)

// ErrGeneration wraps any failure inside the agent pipeline (LLM, tool or
// search calls). The caller reports it in the report pane; there is no retry.
var ErrGeneration = errors.New("report generation failed")

// Strategist is the senior-analyst agent. One instance serves all requests;
// the underlying chat model client is stateless.
type Strategist struct {
	cfg   *config.Config
	md    strategisttools.Snapshotter
	ws    strategisttools.Searcher
	model *openai.ChatModel
	log   zerolog.Logger
}

// NewStrategist wires the agent's chat model against the configured Gemini
// endpoint. Gemini is reached through its OpenAI-compatible surface, so the
// same model component works for any compatible provider.
func NewStrategist(ctx context.Context, cfg *config.Config, md strategisttools.Snapshotter, ws strategisttools.Searcher, log zerolog.Logger) (*Strategist, error) {
	maxTokens := 8192
	temperature := float32(0.5)

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     cfg.GeminiBaseURL,
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return &Strategist{
		cfg:   cfg,
		md:    md,
		ws:    ws,
		model: chatModel,
		log:   log.With().Str("component", "strategist").Logger(),
	}, nil
}

// Generate runs one analysis task and returns the report text. The snapshot
// is fetched by the caller beforehand so the persona is anchored to the real
// current price rather than the model's training data.
func (s *Strategist) Generate(ctx context.Context, ticker string, risk models.RiskPreference, snap *models.StockSnapshot) (string, error) {
	agentTools := []tool.BaseTool{
		strategisttools.NewSnapshotTool(s.md),
		strategisttools.NewWebSearchTool(s.ws, 5),
	}

	agent, err := react.NewAgent(ctx, &react.AgentConfig{
		MaxStep:          s.cfg.MaxSteps,
		ToolCallingModel: s.model,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: agentTools,
		},
		StreamToolCallChecker: toolCallChecker,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	msgs := []*schema.Message{
		schema.SystemMessage(systemPrompt(ticker, snap)),
		schema.UserMessage(taskPrompt(ticker, risk, snap, s.cfg.ReportLanguage)),
	}

	s.log.Info().Str("ticker", ticker).Str("risk", string(risk)).Msg("Running analyst agent")

	out, err := agent.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if out == nil || out.Content == "" {
		return "", fmt.Errorf("%w: agent returned an empty report", ErrGeneration)
	}

	return out.Content, nil
}

func toolCallChecker(ctx context.Context, sr *schema.StreamReader[*schema.Message]) (bool, error) {
	defer sr.Close()
	for {
		msg, err := sr.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		if len(msg.ToolCalls) > 0 {
			return true, nil
		}
	}
}
