package common

import (
	"fmt"
	"runtime"
)

type DetailedError interface {
	Detail() string
}

// Error is a custom error type that records where it was created and
// whether it ends the round trip. See the Detail method.
type Error struct {
	Err     error
	File    string
	IsFatal bool
	Line    int
	Message string
}

// NewError returns a new Error. Fatal errors stop the round trip. The
// only fatal error the bucket tester produces is a failure to build
// the storage client.
func NewError(message string, err error, isFatal bool) *Error {
	_, file, line, _ := runtime.Caller(1)
	return &Error{
		Err:     err,
		File:    file,
		IsFatal: isFatal,
		Line:    line,
		Message: message,
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s Error: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// This returns a detailed error message.
func (e *Error) Detail() string {
	prefix := ""
	if e.IsFatal {
		prefix = "FATAL: "
	}
	underlyingError := ""
	if e.Err != nil {
		underlyingError = fmt.Sprintf("(Underlying error: %s)", e.Err.Error())
	}
	return fmt.Sprintf("%s%s [%s:%d] %s",
		prefix, e.Message, e.File, e.Line, underlyingError)
}

// StorageError captures the details of a failed call to the object
// store, as reported by the S3 service.
type StorageError struct {
	Bucket     string
	Code       string
	Err        error
	Key        string
	Operation  string
	StatusCode int
}

func NewStorageError(operation, bucket, key string, statusCode int, code string, err error) *StorageError {
	return &StorageError{
		Bucket:     bucket,
		Code:       code,
		Err:        err,
		Key:        key,
		Operation:  operation,
		StatusCode: statusCode,
	}
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s/%s failed", e.Operation, e.Bucket, e.Key)
}

func (e *StorageError) Detail() string {
	underlyingError := ""
	if e.Err != nil {
		underlyingError = fmt.Sprintf("(Underlying error: %s)", e.Err.Error())
	}
	code := e.Code
	if code == "" {
		code = "none"
	}
	return fmt.Sprintf(
		"%s %s/%s returned status %d, code %s. %s",
		e.Operation, e.Bucket, e.Key, e.StatusCode, code, underlyingError)
}
