package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors matching the pipeline error taxonomy:
// configuration errors are fatal and never retried, input errors fail the
// single run, heuristic misses are not errors at all.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrConfig     = errors.New("invalid configuration")
	ErrExtraction = errors.New("extraction failed")
	ErrInvalid    = errors.New("invalid input")
)

// WrapError preserves a typed sentinel with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err, kind error) bool {
	return errors.Is(err, kind)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}
