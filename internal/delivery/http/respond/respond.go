package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
)

func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"message": message})
}

func Raw(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// Error maps a service error onto the wire. Business errors raised inside
// the placement function carry their own status and JSON body; kinded errors
// keep their message; anything unclassified is reported generically so
// internals never leak to the client.
func Error(w http.ResponseWriter, err error) {
	var rpcErr *internalErrors.StructuredRPCError
	if errors.As(err, &rpcErr) {
		Raw(w, rpcErr.StatusCode, rpcErr.Body)
		return
	}

	statusCode := internalErrors.Status(err)
	if statusCode == http.StatusInternalServerError {
		Message(w, statusCode, "internal server error")
		return
	}

	Message(w, statusCode, err.Error())
}
