package request

import (
	"bytes"
	"encoding/json"

	"akc_operations/internal/domain/money"

	"github.com/shopspring/decimal"
)

// Amount accepts a JSON number or a string such as "$1,234.50". Values that
// cannot be read as a number decode to zero.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		a.Decimal = money.Parse(s)
		return nil
	}
	a.Decimal = money.Parse(string(b))
	return nil
}
