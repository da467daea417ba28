package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Поиск.
	InvalidGroupCode       failure.ErrorCode = "InvalidGroupCode"       // token does not match NNANN
	ClassificationNotFound failure.ErrorCode = "ClassificationNotFound" // valid batch, nothing matched

	// Справочник.
	InvalidReferenceData failure.ErrorCode = "InvalidReferenceData"
)
