package tacozip

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error kinds. tacozip never panics on documented input; every public
// operation reports one of these through status.Code(err).
//
//   - codes.InvalidArgument: a parameter error (an empty file list, an
//     empty source path, an archive name that is empty or longer than
//     65535 bytes).
//   - codes.Internal: an I/O error opening, reading, writing, seeking,
//     flushing or closing the output or a source file.
//   - codes.DataLoss: the first 160 bytes of an existing archive do not
//     parse as a valid ghost.
//   - codes.Unimplemented: reserved for a library/backend-delegating
//     implementation; this native serializer never returns it.
func newParamError(format string, args ...interface{}) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

func newIOError(op string, err error) error {
	return status.Errorf(codes.Internal, "tacozip: %s: %v", op, err)
}

func newInvalidGhostError(format string, args ...interface{}) error {
	return status.Error(codes.DataLoss, "tacozip: invalid ghost: "+fmt.Sprintf(format, args...))
}

// IsParamError reports whether err is a parameter error: an empty file
// list, an empty source path, or an archive name that is empty or over
// 65535 bytes.
func IsParamError(err error) bool {
	return status.Code(err) == codes.InvalidArgument
}

// IsIOError reports whether err is an I/O failure opening, reading,
// writing, seeking, flushing or closing a file.
func IsIOError(err error) bool {
	return status.Code(err) == codes.Internal
}

// IsInvalidGhost reports whether err means the first 160 bytes of an
// archive did not parse as a valid ghost record.
func IsInvalidGhost(err error) bool {
	return status.Code(err) == codes.DataLoss
}
