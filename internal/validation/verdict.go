package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ayo6706/remittance-engine/internal/domain"
)

// Verdict is the outcome of a single validation rule. A failed verdict always
// carries one of the domain error kinds as Reason.
type Verdict struct {
	OK      bool
	Reason  error
	Missing []string
}

func pass() Verdict {
	return Verdict{OK: true}
}

func fail(reason error, missing ...string) Verdict {
	return Verdict{Reason: reason, Missing: missing}
}

// Err returns nil for a passing verdict, otherwise an error wrapping Reason.
func (v Verdict) Err() error {
	if v.OK {
		return nil
	}
	if len(v.Missing) > 0 {
		return fmt.Errorf("%w: missing %s", v.Reason, strings.Join(v.Missing, ", "))
	}
	return v.Reason
}

// Code is the machine-readable reason, empty for a passing verdict.
func (v Verdict) Code() string {
	if v.OK {
		return ""
	}
	return domain.Kind(v.Reason)
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	out := struct {
		OK      bool     `json:"ok"`
		Reason  string   `json:"reason,omitempty"`
		Message string   `json:"message,omitempty"`
		Missing []string `json:"missing,omitempty"`
	}{OK: v.OK, Reason: v.Code(), Missing: v.Missing}
	if err := v.Err(); err != nil {
		out.Message = err.Error()
	}
	return json.Marshal(out)
}
