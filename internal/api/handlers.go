package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/txn-intake/internal/api/httpx"
	"github.com/baharkarakas/txn-intake/internal/api/validate"
	"github.com/baharkarakas/txn-intake/internal/middleware"
	"github.com/baharkarakas/txn-intake/internal/services"
)

const maxBodyBytes = 1 << 20

type TransactionHandler struct {
	svc *services.TransactionService
}

func NewTransactionHandler(svc *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Save handles a transaction submission. Credentials were checked by the
// HeaderAuth middleware.
func (h *TransactionHandler) Save(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFrom(r.Context())
	if r.Method != http.MethodPost || r.Body == nil {
		httpx.WriteMessage(w, http.StatusBadRequest, httpx.MsgInvalidRequest)
		return
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		slog.Debug("undecodable body", "request_id", reqID, "err", err)
		httpx.WriteMessage(w, http.StatusBadRequest, httpx.MsgInvalidRequest)
		return
	}
	var p services.Payload
	switch b := body.(type) {
	case map[string]any:
		p = b
	case []any:
		// an array has none of the expected fields
		p = services.Payload{}
	default:
		httpx.WriteMessage(w, http.StatusBadRequest, httpx.MsgInvalidRequest)
		return
	}

	id, tx, err := h.svc.Save(r.Context(), p)
	if err != nil {
		var fe *validate.ErrField
		if errors.As(err, &fe) {
			slog.Info("transaction rejected", "request_id", reqID, "field", fe.Field, "reason", fe.Msg)
			httpx.WriteMessage(w, http.StatusBadRequest, fe.Msg)
			return
		}
		slog.Error("save transaction", "request_id", reqID, "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, httpx.MsgInternal)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, httpx.Saved{Message: httpx.MsgSaved, ID: id, Data: tx})
}
