package req

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"similar_groups/pkg/errcodes"
)

// MaxBodySize ограничивает размер тела запроса. Запрос поиска несёт несколько
// кодов, всё больше отклоняется.
const MaxBodySize = 64 << 10

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(w http.ResponseWriter, r *http.Request, dest any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodySize)

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		description := "Invalid JSON"

		var maxBytesErr *http.MaxBytesError

		switch {
		case errors.Is(err, io.EOF):
			description = "Empty body"
		case errors.As(err, &maxBytesErr):
			description = "Body too large"
		}

		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(description),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}
