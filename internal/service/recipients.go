package service

import (
	"fmt"
	"strings"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/ayo6706/remittance-engine/internal/models"
	"github.com/ayo6706/remittance-engine/internal/registry"
)

var defaultRecipients = []models.Recipient{
	{ID: "1", Name: "John Doe", CountryCode: "US", BankName: "Bank of America", AccountNumber: "1234567890", Phone: "+1 555-123-4567"},
	{ID: "2", Name: "Sarah Smith", CountryCode: "GB", BankName: "Barclays", AccountNumber: "9876543210", Phone: "+44 20 1234 5678"},
	{ID: "3", Name: "Michael Brown", CountryCode: "AU", BankName: "Commonwealth Bank", AccountNumber: "5678901234", Phone: "+61 2 1234 5678"},
	{ID: "4", Name: "Emma Johnson", CountryCode: "CA", BankName: "Royal Bank of Canada", AccountNumber: "6789012345", Phone: "+1 416-123-4567"},
	{ID: "5", Name: "David Lee", CountryCode: "IN", BankName: "HDFC Bank", AccountNumber: "7890123456", Phone: "+91 98765 43210"},
	{ID: "6", Name: "Sophie Chen", CountryCode: "DE", BankName: "Deutsche Bank", AccountNumber: "8901234567", Phone: "+49 30 12345678"},
}

// DefaultRecipients returns a copy of the built-in saved recipients.
func DefaultRecipients() []models.Recipient {
	out := make([]models.Recipient, len(defaultRecipients))
	copy(out, defaultRecipients)
	return out
}

type directoryEntry struct {
	recipient   models.Recipient
	countryName string
}

// RecipientDirectory is a read-only list of saved recipients.
type RecipientDirectory struct {
	entries []directoryEntry
	byID    map[string]int
}

// NewRecipientDirectory indexes recipients by ID. Country names are resolved
// through the registry so searches can match them.
func NewRecipientDirectory(reg *registry.Registry, recipients ...models.Recipient) (*RecipientDirectory, error) {
	d := &RecipientDirectory{byID: make(map[string]int, len(recipients))}
	for _, r := range recipients {
		if r.ID == "" {
			return nil, fmt.Errorf("recipient %q has no id", r.Name)
		}
		if _, dup := d.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recipient id %q", r.ID)
		}
		entry := directoryEntry{recipient: r}
		if reg != nil {
			if rec, err := reg.ByCountryCode(r.CountryCode); err == nil {
				entry.countryName = rec.CountryName
			}
		}
		d.byID[r.ID] = len(d.entries)
		d.entries = append(d.entries, entry)
	}
	return d, nil
}

func (d *RecipientDirectory) Get(id string) (models.Recipient, error) {
	idx, ok := d.byID[strings.TrimSpace(id)]
	if !ok {
		return models.Recipient{}, fmt.Errorf("%w: recipient %q", domain.ErrNotFound, id)
	}
	return d.entries[idx].recipient, nil
}

// Search matches the query case-insensitively against the recipient name,
// country name and country code. A blank query lists everyone.
func (d *RecipientDirectory) Search(query string) []models.Recipient {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Recipient, 0, len(d.entries))
	for _, e := range d.entries {
		if q == "" ||
			strings.Contains(strings.ToLower(e.recipient.Name), q) ||
			strings.Contains(strings.ToLower(e.countryName), q) ||
			strings.EqualFold(e.recipient.CountryCode, q) {
			out = append(out, e.recipient)
		}
	}
	return out
}
