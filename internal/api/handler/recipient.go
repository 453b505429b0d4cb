package handler

import (
	"net/http"

	"github.com/ayo6706/remittance-engine/internal/format"
	"github.com/ayo6706/remittance-engine/internal/models"
	"github.com/ayo6706/remittance-engine/internal/service"
)

type recipientView struct {
	models.Recipient
	PhoneDisplay   string `json:"phone_display,omitempty"`
	AccountDisplay string `json:"account_display,omitempty"`
	BankDisplay    string `json:"bank_display,omitempty"`
}

// bankDisplayRunes fits bank names into a single summary line.
const bankDisplayRunes = 16

type RecipientHandler struct {
	directory *service.RecipientDirectory
}

func NewRecipientHandler(directory *service.RecipientDirectory) *RecipientHandler {
	return &RecipientHandler{directory: directory}
}

// Search lists saved recipients matching ?q= by name or country.
func (h *RecipientHandler) Search(w http.ResponseWriter, r *http.Request) {
	found := h.directory.Search(r.URL.Query().Get("q"))
	out := make([]recipientView, 0, len(found))
	for _, rec := range found {
		out = append(out, recipientView{
			Recipient:      rec,
			PhoneDisplay:   format.Phone(rec.Phone),
			AccountDisplay: format.MaskAccount(rec.AccountNumber),
			BankDisplay:    format.Truncate(rec.BankName, bankDisplayRunes),
		})
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"recipients": out})
}
