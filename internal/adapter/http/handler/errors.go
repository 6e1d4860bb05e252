package handler

import "net/http"

func errorResponse(w http.ResponseWriter, status int, message any) {
	env := envelope{"success": false, "error": message}

	// Write the response using the writeJSON() helper. If this happens to return an
	// error then fall back to sending the client an empty response with a
	// 500 Internal Server Error status code.
	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

// failedValidationResponse returns 400 with the offending fields.
func failedValidationResponse(w http.ResponseWriter, errors map[string]string) {
	env := envelope{"success": false, "error": "invalid request parameters", "fields": errors}
	if err := writeJSON(w, http.StatusBadRequest, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

func badRequestResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusBadRequest, message)
}

// internalErrorResponse returns 500 InternalServerError status
func internalErrorResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusInternalServerError, message)
}
