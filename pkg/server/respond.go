package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
)

type errorBody struct {
	Code    tcerrors.Code `json:"code"`
	Message string        `json:"message"`
}

var statusByCode = map[tcerrors.Code]int{
	tcerrors.ErrCodeInvalidSize:   http.StatusBadRequest,
	tcerrors.ErrCodeInvalidInput:  http.StatusBadRequest,
	tcerrors.ErrCodeInvalidFormat: http.StatusBadRequest,
	tcerrors.ErrCodeInvalidConfig: http.StatusBadRequest,
	tcerrors.ErrCodeNotFound:      http.StatusNotFound,
	tcerrors.ErrCodeEmptyLayout:   http.StatusConflict,
}

func notFound(format string, args ...any) error {
	return tcerrors.New(tcerrors.ErrCodeNotFound, format, args...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps coded errors to their status. Anything else is a 500
// whose detail stays in the server log.
func writeError(w http.ResponseWriter, err error) {
	code := tcerrors.GetCode(err)
	status, ok := statusByCode[code]
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Code:    tcerrors.ErrCodeInternal,
			Message: "internal error",
		})
		return
	}
	writeJSON(w, status, errorBody{Code: code, Message: tcerrors.UserMessage(err)})
}

// decode reads a JSON body into v. An empty body leaves v untouched when
// optional is set.
func decode(r *http.Request, w http.ResponseWriter, v any, optional bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return tcerrors.Wrap(tcerrors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
