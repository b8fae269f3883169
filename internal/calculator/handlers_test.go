package calculator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tip-time/internal/observability"
	"tip-time/internal/testutil"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func useObservedLogger(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	old := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = old })
	return logs
}

func TestTipComputesBothFigures(t *testing.T) {
	useObservedLogger(t)

	body := `{"amount":"100","tip_percent":"17.5","people":"2","round_up":true}`
	r := testutil.NewJSONRequest(http.MethodPost, "/calculator/tip", body)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(Tip))

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp TipResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.TipAmount != "$9.00" {
		t.Errorf("tip_amount = %q, want %q", resp.TipAmount, "$9.00")
	}
	if resp.TotalPerPerson != "$59.00" {
		t.Errorf("total_per_person = %q, want %q", resp.TotalPerPerson, "$59.00")
	}
	if resp.Input.People != 2 || !resp.Input.RoundUp || resp.Input.Amount != 100 {
		t.Errorf("unexpected normalized input: %+v", resp.Input)
	}
	if resp.Currency != "USD" {
		t.Errorf("currency = %q, want USD", resp.Currency)
	}
}

func TestTipAcceptsJSONNumbers(t *testing.T) {
	useObservedLogger(t)

	body := `{"amount":100,"tip_percent":20,"people":4}`
	r := testutil.NewJSONRequest(http.MethodPost, "/calculator/tip", body)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(Tip))

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp TipResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.TipAmount != "$5.00" || resp.TotalPerPerson != "$30.00" {
		t.Fatalf("unexpected result: %+v", resp)
	}
}

func TestTipDefaultsMalformedFields(t *testing.T) {
	useObservedLogger(t)

	body := `{"amount":"12,00","tip_percent":"lots","people":"everyone"}`
	r := testutil.NewJSONRequest(http.MethodPost, "/calculator/tip", body)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(Tip))

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp TipResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Input.Amount != 0 || resp.Input.TipPercent != 0 || resp.Input.People != 1 {
		t.Fatalf("expected defaults, got %+v", resp.Input)
	}
	if resp.TipAmount != "$0.00" || resp.TotalPerPerson != "$0.00" {
		t.Fatalf("unexpected result: %+v", resp)
	}
}

func TestTipRejectsInvalidBody(t *testing.T) {
	useObservedLogger(t)

	r := testutil.NewJSONRequest(http.MethodPost, "/calculator/tip", `{"amount":`)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(Tip))

	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

	if got := testutil.ErrorMessage(t, w.Body); got != "invalid request body" {
		t.Fatalf("expected error %q, got %q", "invalid request body", got)
	}
}

func TestTipZeroPeopleIsNotRejected(t *testing.T) {
	logs := useObservedLogger(t)

	body := `{"amount":"100","tip_percent":"15","people":"0"}`
	r := testutil.NewJSONRequest(http.MethodPost, "/calculator/tip", body)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(Tip))

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp TipResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.TipAmount != "$∞" {
		t.Fatalf("tip_amount = %q, want %q", resp.TipAmount, "$∞")
	}

	if n := logs.FilterMessage("splitting across non-positive people count").Len(); n != 1 {
		t.Fatalf("expected 1 unguarded split warning, got %d", n)
	}
}

func TestTipQuery(t *testing.T) {
	useObservedLogger(t)

	r := httptest.NewRequest(http.MethodGet, "/calculator/tip?amount=100&tip_percent=15&people=1&round_up=true", nil)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(TipQuery))

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp TipResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.TipAmount != "$15.00" || resp.TotalPerPerson != "$115.00" {
		t.Fatalf("unexpected result: %+v", resp)
	}
}

func TestTipLocaleSelection(t *testing.T) {
	useObservedLogger(t)

	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		wantCurrency   string
	}{
		{name: "default", target: "/calculator/tip?amount=10", wantCurrency: "USD"},
		{name: "accept-language", target: "/calculator/tip?amount=10", acceptLanguage: "en-GB", wantCurrency: "GBP"},
		{name: "query wins", target: "/calculator/tip?amount=10&locale=ja-JP", acceptLanguage: "en-GB", wantCurrency: "JPY"},
		{name: "bad query ignored", target: "/calculator/tip?amount=10&locale=%21%21", acceptLanguage: "en-GB", wantCurrency: "GBP"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.acceptLanguage != "" {
				r.Header.Set("Accept-Language", tc.acceptLanguage)
			}
			w := testutil.ExecuteRequest(r, http.HandlerFunc(TipQuery))

			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			var resp TipResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)
			if resp.Currency != tc.wantCurrency {
				t.Fatalf("currency = %q, want %q", resp.Currency, tc.wantCurrency)
			}
		})
	}
}

func TestBatch(t *testing.T) {
	logs := useObservedLogger(t)

	body := `{"inputs":[
		{"amount":"100","tip_percent":"15","people":"1"},
		{"amount":"100","tip_percent":"20","people":"4"},
		{"amount":"","tip_percent":"","people":""}
	]}`
	r := testutil.NewJSONRequest(http.MethodPost, "/calculator/batch", body)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(Batch))

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp BatchResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	want := []struct{ tip, total string }{
		{tip: "$15.00", total: "$115.00"},
		{tip: "$5.00", total: "$30.00"},
		{tip: "$0.00", total: "$0.00"},
	}
	if len(resp.Results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(resp.Results))
	}
	for i, wt := range want {
		got := resp.Results[i]
		if got.TipAmount != wt.tip || got.TotalPerPerson != wt.total {
			t.Errorf("result %d: got (%q, %q), want (%q, %q)", i, got.TipAmount, got.TotalPerPerson, wt.tip, wt.total)
		}
	}

	if n := logs.FilterMessage("tip calculated").Len(); n != 3 {
		t.Fatalf("expected 3 calculation logs, got %d", n)
	}
}

func TestBatchRejectsEmptyAndOversized(t *testing.T) {
	useObservedLogger(t)

	var many strings.Builder
	many.WriteString(`{"inputs":[`)
	for i := 0; i <= maxBatchInputs; i++ {
		if i > 0 {
			many.WriteString(",")
		}
		many.WriteString(`{"amount":"1"}`)
	}
	many.WriteString(`]}`)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "empty", body: `{"inputs":[]}`, wantErr: "no inputs provided"},
		{name: "oversized", body: many.String(), wantErr: "too many inputs: limit is 100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testutil.NewJSONRequest(http.MethodPost, "/calculator/batch", tc.body)
			w := testutil.ExecuteRequest(r, http.HandlerFunc(Batch))

			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			if got := testutil.ErrorMessage(t, w.Body); got != tc.wantErr {
				t.Fatalf("expected error %q, got %q", tc.wantErr, got)
			}
		})
	}
}

func TestRejectsOversizedBody(t *testing.T) {
	useObservedLogger(t)

	huge := `{"amount":"` + strings.Repeat("1", maxBodyBytes+1024) + `"}`

	tests := []struct {
		name    string
		path    string
		handler http.HandlerFunc
		body    string
	}{
		{name: "tip", path: "/calculator/tip", handler: Tip, body: huge},
		{name: "batch", path: "/calculator/batch", handler: Batch, body: `{"inputs":[` + huge + `]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testutil.NewJSONRequest(http.MethodPost, tc.path, tc.body)
			w := testutil.ExecuteRequest(r, tc.handler)

			testutil.CheckResponseCode(t, http.StatusRequestEntityTooLarge, w.Code)

			if got := testutil.ErrorMessage(t, w.Body); got != "request body too large" {
				t.Fatalf("expected error %q, got %q", "request body too large", got)
			}
		})
	}
}
