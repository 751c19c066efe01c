package httpx

import (
	"encoding/json"
	"net/http"
)

const (
	MsgInvalidRequest = "Invalid request"
	MsgMissingHeaders = "Missing auth headers"
	MsgUnauthorized   = "Unauthorized"
	MsgInternal       = "Internal server error"
	MsgSaved          = "Transaction saved"
)

type Message struct {
	Message string `json:"message"`
}

type Saved struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Data    any    `json:"data"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}
