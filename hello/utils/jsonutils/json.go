package jsonutils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// DecodeError is a rejected request body, carrying the status to reply with.
type DecodeError struct {
	Status int
	Msg    string
}

func (e *DecodeError) Error() string { return e.Msg }

// DecodeBody reads r's JSON body into dst. Fields named in required must
// be present and non-null.
//
// Rejections mirror the usual JSON extractor contract:
//   - 415 when Content-Type is not application/json or application/*+json
//   - 400 when the body is not syntactically valid JSON
//   - 422 when the JSON is valid but does not match dst
//
// Unknown fields are ignored.
func DecodeBody(r *http.Request, dst any, required ...string) error {
	if !isJSONContentType(r.Header.Get("Content-Type")) {
		return &DecodeError{
			Status: http.StatusUnsupportedMediaType,
			Msg:    "Expected request with `Content-Type: application/json`",
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return &DecodeError{Status: http.StatusBadRequest, Msg: fmt.Sprintf("Failed to buffer the request body: %v", err)}
	}
	if !json.Valid(body) {
		return &DecodeError{Status: http.StatusBadRequest, Msg: "Failed to parse the request body as JSON"}
	}

	// Presence check first, so a missing field never decodes as its zero value.
	if len(required) > 0 {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
			return &DecodeError{Status: http.StatusUnprocessableEntity, Msg: "Failed to deserialize the JSON body: expected an object"}
		}
		for _, name := range required {
			raw, ok := fields[name]
			if !ok {
				return &DecodeError{
					Status: http.StatusUnprocessableEntity,
					Msg:    fmt.Sprintf("Failed to deserialize the JSON body: missing field `%s`", name),
				}
			}
			// null would otherwise decode as the zero value
			if v := bytes.TrimSpace(raw); len(v) == 0 || bytes.Equal(v, []byte("null")) {
				return &DecodeError{
					Status: http.StatusUnprocessableEntity,
					Msg:    fmt.Sprintf("Failed to deserialize the JSON body: invalid type for `%s`: null", name),
				}
			}
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &DecodeError{
				Status: http.StatusUnprocessableEntity,
				Msg:    fmt.Sprintf("Failed to deserialize the JSON body: invalid type for `%s`: expected %s", typeErr.Field, typeErr.Type),
			}
		}
		return &DecodeError{Status: http.StatusUnprocessableEntity, Msg: fmt.Sprintf("Failed to deserialize the JSON body: %v", err)}
	}
	return nil
}

// StatusOf returns the HTTP status for err: the DecodeError status when err
// is one, fallback otherwise.
func StatusOf(err error, fallback int) int {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Status
	}
	return fallback
}

func isJSONContentType(header string) bool {
	if header == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	if mediaType == "application/json" {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}
