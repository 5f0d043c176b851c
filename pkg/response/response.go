// Package response provides unified API response structures.
// All HTTP endpoints return this envelope so clients can branch on the
// business code instead of string-matching messages.
package response

import (
	"net/http"
	"sync"

	"github.com/kart-io/mongogate/pkg/errors"
)

// Response is the unified API response structure.
type Response struct {
	// Code is the business error code (0 = success)
	Code int `json:"code"`

	// Message is a human-readable message
	Message string `json:"message"`

	// Data contains the response payload (nil for errors)
	Data interface{} `json:"data,omitempty"`

	// RequestID is the unique request identifier for tracing
	RequestID string `json:"request_id,omitempty"`

	// httpStatus is the HTTP status to write; not serialized.
	httpStatus int
}

// PageData represents paginated data.
type PageData struct {
	// List contains the data items
	List interface{} `json:"list"`

	// Total is the total number of items
	Total int64 `json:"total"`

	// Page is the current page number (1-based)
	Page int `json:"page"`

	// PageSize is the number of items per page
	PageSize int `json:"page_size"`
}

var pool = sync.Pool{
	New: func() interface{} { return new(Response) },
}

// Acquire gets a Response from the pool.
func Acquire() *Response {
	return pool.Get().(*Response)
}

// Release resets a Response and returns it to the pool.
func Release(r *Response) {
	if r == nil {
		return
	}
	*r = Response{}
	pool.Put(r)
}

// Success creates a successful response with data.
func Success(data interface{}) *Response {
	r := Acquire()
	r.Code = 0
	r.Message = "success"
	r.Data = data
	r.httpStatus = http.StatusOK
	return r
}

// Created creates a successful creation response (HTTP 201).
func Created(data interface{}) *Response {
	r := Success(data)
	r.httpStatus = http.StatusCreated
	return r
}

// Page creates a successful paginated response.
func Page(list interface{}, total int64, page, pageSize int) *Response {
	return Success(&PageData{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Err creates an error response from an Errno.
func Err(e *errors.Errno) *Response {
	if e == nil {
		return Success(nil)
	}
	r := Acquire()
	r.Code = e.Code
	r.Message = e.MessageEN
	r.httpStatus = e.HTTPStatus()
	return r
}

// IsSuccess reports whether the response carries a success code.
func (r *Response) IsSuccess() bool {
	return r.Code == 0
}

// HTTPStatus returns the HTTP status code to write.
func (r *Response) HTTPStatus() int {
	if r.httpStatus != 0 {
		return r.httpStatus
	}
	if r.Code == 0 {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// WithRequestID attaches a request identifier for tracing.
func (r *Response) WithRequestID(requestID string) *Response {
	r.RequestID = requestID
	return r
}
