package handlers

import (
	"encoding/json"
	"net/http"

	"itemBack/internal/models"
)

// errAuthRequired covers the should-not-happen case of an authenticated
// route reached without an identity in context.
var errAuthRequired = models.NewAPIError(http.StatusUnauthorized, models.CodeUnauthorized, "Unauthorized Access")

func writeJSON(w http.ResponseWriter, status int, body models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, models.SuccessResponse(message, data))
}

// writeError maps a service failure onto the envelope. Anything that is not
// an APIError surfaces as a generic 500 so internals never reach the client.
func writeError(w http.ResponseWriter, err error) {
	apiErr := models.AsAPIError(err)
	writeJSON(w, apiErr.Status, models.ErrorResponse(apiErr.Code, apiErr.Message))
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse(models.CodeInvalidParam, message))
}
