package reply

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"similar_groups/pkg/contextx"
	"similar_groups/pkg/errcodes"
	"similar_groups/pkg/logx"
	"similar_groups/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	internalErrorMessage = "internal server error"
	unsupportedID        = contextx.TraceID("unsupported")
)

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error пишет err как rest.Error. Клиентские ошибки сохраняют описание,
// неклассифицированные превращаются в 500 с общим сообщением.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	statusCode, defaultCode := classify(err)

	response := rest.Error{
		Code:      rest.ErrorCode(failure.Code(err).String()),
		Message:   failure.Description(err),
		SupportID: contextx.TraceIDFromContextOr(ctx, unsupportedID).String(),
	}

	if response.Code == "" {
		response.Code = rest.ErrorCode(defaultCode.String())
	}

	level := slog.LevelWarn

	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError

		if response.Message == "" {
			response.Message = internalErrorMessage
		}
	}

	logger(ctx).Log(ctx, level, "error", logx.Error(err), slog.String("code", string(response.Code)))

	JSON(ctx, w, statusCode, response)
}

func classify(err error) (int, failure.ErrorCode) {
	switch {
	case failure.IsInvalidArgumentError(err):
		return http.StatusBadRequest, errcodes.ValidationError
	case failure.IsNotFoundError(err):
		return http.StatusNotFound, errcodes.NotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errcodes.TimeoutExceeded
	default:
		return http.StatusInternalServerError, errcodes.InternalServerError
	}
}
