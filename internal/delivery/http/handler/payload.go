package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hospital-backend/internal/delivery/dto"
)

const maxPayloadBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

// readOperation returns the "operation" discriminator and its payload. The
// payload comes from the "json" query/form value when present, otherwise
// from the raw request body.
func readOperation(r *http.Request) (string, []byte, error) {
	operation := r.FormValue("operation")
	if raw := r.FormValue("json"); raw != "" {
		return operation, []byte(raw), nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		return operation, nil, errInvalidBody
	}
	return operation, body, nil
}

// readAction reads a JSON body of the form {"action": "...", ...fields}.
func readAction(r *http.Request) (string, []byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		return "", nil, errInvalidBody
	}

	var req dto.ActionRequest
	if err := decodePayload(body, &req); err != nil {
		return "", nil, err
	}
	return req.Action, body, nil
}

// decodePayload unmarshals payload into dst. An empty payload leaves dst
// untouched.
func decodePayload(payload []byte, dst interface{}) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return errInvalidBody
	}
	return nil
}
