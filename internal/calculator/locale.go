package calculator

import (
	"net/http"

	"tip-time/internal/money"
)

// formatterFor resolves the currency formatter for a request: an explicit
// ?locale= wins, then Accept-Language, then the process default. An
// unparseable ?locale= is ignored.
func formatterFor(r *http.Request) *money.Formatter {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		if f, err := money.NewFormatter(locale); err == nil {
			return f
		}
	}
	return money.Match(r.Header.Get("Accept-Language"), money.Default())
}
