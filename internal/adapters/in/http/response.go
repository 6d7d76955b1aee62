package http

import (
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/labstack/echo/v4"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

// Wire error codes. Clients branch on these, so they are part of the API
// contract and never change with the underlying error message.
const (
	codeBadRequest         = "BadRequest"
	codeValidationError    = "ValidationError"
	codeStatusError        = "StatusError"
	codeMissingAccessToken = "MissingAccessToken"
	codeUnauthorized       = "UnauthorizedError"
	codeForbidden          = "Forbidden"
	codeResourceNotFound   = "ResourceNotFound"
	codeDuplicate          = "DuplicateException"
	codeConflict           = "Conflict"
	codeInternalError      = "InternalServerError"
)

// DataEnvelope wraps every successful response body.
type DataEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, DataEnvelope{Data: data})
}

func respondError(ctx echo.Context, status int, code, message string) error {
	return ctx.JSON(status, ErrorEnvelope{Code: code, Message: message})
}

// respondDomainError maps a domain error to its HTTP status and wire code via
// errors.Is on the errs sentinels. Unclassified errors become 500 with a
// generic message so internals never leak to the client.
func respondDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrIllegalStatusTransition):
		return respondError(ctx, http.StatusBadRequest, codeStatusError, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, codeValidationError, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return respondError(ctx, http.StatusUnauthorized, codeUnauthorized, err.Error())
	case errors.Is(err, errs.ErrAccessForbidden):
		return respondError(ctx, http.StatusForbidden, codeForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, codeResourceNotFound, err.Error())
	case errors.Is(err, errs.ErrDuplicateValue):
		return respondError(ctx, http.StatusConflict, codeDuplicate, err.Error())
	case errors.Is(err, errs.ErrVersionConflict):
		return respondError(ctx, http.StatusConflict, codeConflict, err.Error())
	default:
		ctx.Logger().Errorf("unhandled error: %v", err)
		return respondError(ctx, http.StatusInternalServerError, codeInternalError, "internal server error")
	}
}

// respondValidationError reports request body validation failures. For ozzo
// field errors only the first violation is reported, in field order, matching
// the one-message-per-response contract.
func respondValidationError(ctx echo.Context, err error) error {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		for _, field := range sortedKeys(fieldErrors) {
			return respondError(ctx, http.StatusBadRequest, codeValidationError,
				field+": "+fieldErrors[field].Error())
		}
	}
	return respondError(ctx, http.StatusBadRequest, codeValidationError, err.Error())
}

func sortedKeys(fieldErrors validation.Errors) []string {
	keys := make([]string, 0, len(fieldErrors))
	for k := range fieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
