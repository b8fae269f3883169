package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"tip-time/internal/calculator"
	"tip-time/internal/money"
	"tip-time/internal/observability"
	"tip-time/internal/tip"
)

func (s *Server) registerTools() {
	// calculate_tip
	s.server.AddTool(&mcp.Tool{
		Name:        "calculate_tip",
		Description: "Calculate the per-person tip and per-person total for a bill",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"amount": {"type": "string", "description": "Bill amount as typed, e.g. \"84.20\""},
				"tip_percent": {"type": "string", "description": "Tip percentage, e.g. \"18\""},
				"people": {"type": "string", "description": "Number of people splitting the bill", "default": "1"},
				"round_up": {"type": "boolean", "description": "Round the whole tip up to the next currency unit", "default": false},
				"locale": {"type": "string", "description": "BCP-47 locale for currency formatting, e.g. \"en-US\""}
			},
			"required": ["amount", "tip_percent"]
		}`),
	}, s.handleCalculateTip)
}

type calculateTipResult struct {
	calculator.NormalizedInput
	TipAmount      string `json:"tip_amount"`
	TotalPerPerson string `json:"total_per_person"`
	Locale         string `json:"locale"`
	Currency       string `json:"currency"`
}

func (s *Server) formatter(locale string) (*money.Formatter, error) {
	if locale != "" {
		return money.NewFormatter(locale)
	}
	if s.fallback != nil {
		return s.fallback, nil
	}
	return money.Default(), nil
}

func (s *Server) handleCalculateTip(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		calculator.TipRequest
		Locale string `json:"locale"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	f, err := s.formatter(params.Locale)
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("unsupported locale: %v", err)},
			},
			IsError: true,
		}, nil
	}

	in := tip.Normalize(params.Raw())
	res := tip.New(f).Calculate(in)

	observability.Logger.Debug("mcp tip calculated",
		zap.Int("people", in.People),
		zap.String("tip_amount", res.TipAmount),
		zap.String("total_per_person", res.TotalPerPerson),
	)

	data, err := json.MarshalIndent(calculateTipResult{
		NormalizedInput: calculator.NormalizedInput{
			Amount:     in.Amount,
			TipPercent: in.TipPercent,
			People:     in.People,
			RoundUp:    in.RoundUp,
		},
		TipAmount:      res.TipAmount,
		TotalPerPerson: res.TotalPerPerson,
		Locale:         f.Locale(),
		Currency:       f.Currency(),
	}, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}
