package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCorridorsCommand(t *testing.T) {
	out, err := run(t, "corridors")
	require.NoError(t, err)
	assert.Contains(t, out, "NP Nepal")
	assert.Contains(t, out, "USD ($)")
	assert.Contains(t, out, "1,000,000")
}

func TestRatesCommand(t *testing.T) {
	out, err := run(t, "rates")
	require.NoError(t, err)
	assert.Contains(t, out, "1 NPR =")
	assert.Contains(t, out, "USD")

	_, err = run(t, "rates", "--source", "BTC")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestQuoteCommand(t *testing.T) {
	out, err := run(t, "quote", "10000", "US")
	require.NoError(t, err)
	assert.Contains(t, out, "Rs10,000.00")
	assert.Contains(t, out, "Recipient gets $73.88")

	out, err = run(t, "quote", "10000", "USD", "--fee-policy", "on_top")
	require.NoError(t, err)
	assert.Contains(t, out, "Total payable: Rs10,150.00")

	out, err = run(t, "quote", "10", "USD")
	assert.ErrorIs(t, err, domain.ErrAmountTooLow)
	assert.Contains(t, out, "amount_too_low")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "password", "Abcdefg1")
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	out, err = run(t, "validate", "password", "abcdefgh")
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
	assert.Contains(t, out, "uppercase, digit")

	_, err = run(t, "validate", "phone", "9812345678")
	require.NoError(t, err)

	_, err = run(t, "validate", "phone", "9812345678", "--country", "US")
	require.NoError(t, err)

	_, err = run(t, "validate", "amount", "500", "--currency", "IN")
	assert.ErrorIs(t, err, domain.ErrAmountTooLow)

	_, err = run(t, "validate", "colour", "red")
	assert.Error(t, err)
}

func TestCorridorsFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corridors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`base_currency: NPR
corridors:
  - country_code: NP
    country_name: Nepal
    currency_code: NPR
    currency_name: Nepalese Rupee
    currency_symbol: Rs
    quoted_rate: "1"
    fee_percent: "0"
    min_amount: "100"
    max_amount: "1000000"
    processing_time: Instant
  - country_code: US
    country_name: United States
    currency_code: USD
    currency_name: US Dollar
    currency_symbol: $
    quoted_rate: "0.0080"
    fee_percent: "2"
    min_amount: "500"
    max_amount: "50000"
    processing_time: Next day
`), 0o600))

	out, err := run(t, "--corridors", path, "quote", "10000", "USD")
	require.NoError(t, err)
	assert.Contains(t, out, "Recipient gets $78.40")

	_, err = run(t, "--corridors", filepath.Join(t.TempDir(), "missing.yaml"), "corridors")
	assert.Error(t, err)
}
