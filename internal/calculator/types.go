package calculator

import (
	"bytes"
	"encoding/json"

	"tip-time/internal/tip"
)

// Text is a raw form value. It decodes from a JSON string or, for clients
// that send numbers, from the literal text of a JSON number.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// TipRequest is the JSON body for POST /calculator/tip and one entry of a
// batch. Fields carry the text exactly as typed.
type TipRequest struct {
	Amount     Text `json:"amount"`
	TipPercent Text `json:"tip_percent"`
	People     Text `json:"people"`
	RoundUp    bool `json:"round_up"`
}

// Raw converts the request into the calculator's raw input.
func (r TipRequest) Raw() tip.RawInput {
	return tip.RawInput{
		Amount:     string(r.Amount),
		TipPercent: string(r.TipPercent),
		People:     string(r.People),
		RoundUp:    r.RoundUp,
	}
}

// NormalizedInput echoes the numbers the calculation actually used.
type NormalizedInput struct {
	Amount     float64 `json:"amount"`
	TipPercent float64 `json:"tip_percent"`
	People     int     `json:"people"`
	RoundUp    bool    `json:"round_up"`
}

// TipResponse is the JSON response for a single calculation.
type TipResponse struct {
	Input          NormalizedInput `json:"input"`
	TipAmount      string          `json:"tip_amount"`
	TotalPerPerson string          `json:"total_per_person"`
	Locale         string          `json:"locale"`
	Currency       string          `json:"currency"`
}

// BatchRequest is the JSON body for POST /calculator/batch.
type BatchRequest struct {
	Inputs []TipRequest `json:"inputs"`
}

// BatchResponse is the JSON response for POST /calculator/batch. Results
// are in request order.
type BatchResponse struct {
	Results []TipResponse `json:"results"`
}

func newTipResponse(in tip.NormalizedInput, res tip.Result, locale, currency string) TipResponse {
	return TipResponse{
		Input: NormalizedInput{
			Amount:     in.Amount,
			TipPercent: in.TipPercent,
			People:     in.People,
			RoundUp:    in.RoundUp,
		},
		TipAmount:      res.TipAmount,
		TotalPerPerson: res.TotalPerPerson,
		Locale:         locale,
		Currency:       currency,
	}
}
