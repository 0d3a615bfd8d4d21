package apierr

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Code string

const (
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodeInvalidToken     Code = "INVALID_TOKEN"
	CodeForbidden        Code = "FORBIDDEN"
	CodeNotFound         Code = "NOT_FOUND"
	CodeConflict         Code = "CONFLICT"
	CodeInvalidState     Code = "INVALID_STATE"
	CodeOutOfStock       Code = "OUT_OF_STOCK"
	CodeAlreadyProcessed Code = "ALREADY_PROCESSED"
	CodeNotReturnable    Code = "NOT_RETURNABLE"
	CodeInternal         Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func ErrInvalid(msg string) *APIError         { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrUnauthenticated(msg string) *APIError { return &APIError{Code: CodeUnauthenticated, Message: msg} }
func ErrInvalidToken(msg string) *APIError    { return &APIError{Code: CodeInvalidToken, Message: msg} }
func ErrForbidden(msg string) *APIError       { return &APIError{Code: CodeForbidden, Message: msg} }
func ErrNotFound(msg string) *APIError        { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrConflict(msg string) *APIError        { return &APIError{Code: CodeConflict, Message: msg} }
func ErrInvalidState(msg string) *APIError    { return &APIError{Code: CodeInvalidState, Message: msg} }
func ErrOutOfStock(msg string) *APIError      { return &APIError{Code: CodeOutOfStock, Message: msg} }
func ErrAlreadyProcessed(msg string) *APIError {
	return &APIError{Code: CodeAlreadyProcessed, Message: msg}
}
func ErrNotReturnable(msg string) *APIError { return &APIError{Code: CodeNotReturnable, Message: msg} }
func ErrInternal(msg string) *APIError      { return &APIError{Code: CodeInternal, Message: msg} }

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var api *APIError
	return errors.As(err, &api) && api.Code == code
}

func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument, CodeInvalidState, CodeOutOfStock, CodeAlreadyProcessed, CodeNotReturnable:
			return http.StatusBadRequest
		case CodeUnauthenticated, CodeInvalidToken:
			return http.StatusUnauthorized
		case CodeForbidden:
			return http.StatusForbidden
		case CodeNotFound:
			return http.StatusNotFound
		case CodeConflict:
			return http.StatusConflict
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// ErrorBody is the JSON envelope of every error response.
type ErrorBody struct {
	Error *APIError `json:"error"`
}

// Body renders err as {"error":{"code":..,"message":..}}. Errors that are not
// an *APIError are reported as INTERNAL without leaking their text.
func Body(err error) ErrorBody {
	var api *APIError
	if errors.As(err, &api) {
		return ErrorBody{Error: api}
	}
	return ErrorBody{Error: ErrInternal("internal server error")}
}

// Respond writes err with its mapped status and aborts the chain.
func Respond(c *gin.Context, err error) {
	status := ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.AbortWithStatusJSON(status, Body(err))
}
