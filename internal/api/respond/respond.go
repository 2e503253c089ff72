// Package respond holds the JSON response helpers shared by handlers and
// middleware. Client-visible failures use a {"message": ...} body; unhandled
// internal faults use {"error": ...}.
package respond

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes payload with status 200.
func OK(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, payload)
}

// Created writes payload with status 201.
func Created(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusCreated, payload)
}

// Fail writes a client-visible failure body {"message": ...}.
func Fail(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"message": err.Error()})
}

// Internal writes an unhandled fault as 500 {"error": ...}.
func Internal(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
