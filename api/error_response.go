package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	db "github.com/Drolfothesgnir/chanpost/db/sqlc"
	"github.com/Drolfothesgnir/chanpost/openpost"
	"github.com/Drolfothesgnir/chanpost/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	// api errors
	ErrInvalidParams    = errors.New("invalid params")
	ErrInvalidPostID    = errors.New("invalid post id")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrPostNotFound     = errors.New("post not found")
	ErrThreadNotFound   = errors.New("thread not found")
	ErrSessionNotFound  = errors.New("open post session not found")
	ErrPostClosed       = errors.New("post is closed")
	ErrCommandsDesync   = errors.New("commands do not match the body")
	ErrInternal         = errors.New("internal server error")
)

type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{
		Error:  err.Error(),
		Fields: fields,
	}
}

// ExtractErrorFields turns validator errors into per-field messages.
// Other errors yield no fields.
func ExtractErrorFields(err error) []ErrorField {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, ErrorField{
			FieldName:    fe.Field(),
			ErrorMessage: getBindingErrorMessage(fe.Tag()),
		})
	}
	return fields
}

func getBindingErrorMessage(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "len":
		return "invalid length"
	case "email":
		return "invalid email address"
	case "url":
		return "invalid URL format"
	case "alphanum":
		return "must contain only letters and numbers"
	case "alpha":
		return "must contain only letters"
	case "numeric":
		return "must contain only numbers"
	case "gte":
		return "must be greater than or equal to the allowed minimum"
	case "lte":
		return "must be less than or equal to the allowed maximum"
	case "gt":
		return "must be greater than the allowed minimum"
	case "lt":
		return "must be less than the allowed maximum"
	case "oneof":
		return "must be one of the allowed values"
	case "uuid":
		return "invalid UUID format"
	case "ip":
		return "invalid IP address"
	case "ipv4":
		return "invalid IPv4 address"
	case "ipv6":
		return "invalid IPv6 address"
	case "startswith":
		return "must start with the required prefix"
	case "endswith":
		return "must end with the required suffix"
	case "single_char":
		return "must be exactly one character"
	default:
		return "invalid input"
	}
}

// abortWithStoreError maps a store or session failure to its HTTP status.
func abortWithStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, tmpstore.ErrSessionNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, NewErrorResponse(ErrSessionNotFound))
		return
	case errors.Is(err, db.ErrThreadNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, NewErrorResponse(ErrThreadNotFound))
		return
	}

	switch db.ErrorKind(err) {
	case db.KindNotFound:
		ctx.AbortWithStatusJSON(http.StatusNotFound, NewErrorResponse(ErrPostNotFound))
	case db.KindClosed:
		ctx.AbortWithStatusJSON(http.StatusConflict, NewErrorResponse(ErrPostClosed))
	case db.KindInvalid:
		ctx.AbortWithStatusJSON(http.StatusBadRequest, NewErrorResponse(err))
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorResponse(ErrInternal))
	}
}

// abortWithEditError maps a rejected editing operation. Every openpost error
// is the client's fault.
func abortWithEditError(ctx *gin.Context, err error) {
	if errors.Is(err, openpost.ErrNoPostOpen) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, NewErrorResponse(ErrSessionNotFound))
		return
	}
	ctx.AbortWithStatusJSON(http.StatusBadRequest, NewErrorResponse(err))
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
