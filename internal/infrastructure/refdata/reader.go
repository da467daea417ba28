package refdata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"similar_groups/internal/domain"
	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/value"
	"similar_groups/pkg/errcodes"
	"similar_groups/pkg/logx"
)

const (
	ColumnGroupCode      = "group_code"
	ColumnClassification = "classification"
	ColumnGeneralSimilar = "general_similar"
	ColumnRemarkSimilar  = "remark_similar"
	ColumnRelatedCodes   = "related_codes"
)

var errEmptyClassification = errors.New("classification is empty")

var requiredColumns = []string{ //nolint:gochecknoglobals
	ColumnGroupCode,
	ColumnClassification,
	ColumnGeneralSimilar,
	ColumnRemarkSimilar,
}

// FileReader читает справочник групп сходства из файла .csv или .xlsx.
// Первая строка заголовок с названиями колонок.
type FileReader struct{}

func NewFileReader() FileReader {
	return FileReader{}
}

func (FileReader) Read(ctx context.Context, path string) ([]entity.SimilarGroup, error) {
	var (
		records [][]string
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		records, err = readCSV(path)
	case ".xlsx", ".xlsm":
		records, err = readXLSX(path)
	default:
		return nil, domain.NewError(errcodes.InvalidReferenceData, fmt.Sprintf("unsupported reference file extension %q", ext))
	}

	if err != nil {
		return nil, err
	}

	groups, err := parseRecords(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger(ctx).Info("reference file read", slog.String(logx.FieldPath, path), slog.Int("rows", len(groups)))

	return groups, nil
}

type header map[string]int

func newHeader(row []string) (header, error) {
	h := make(header, len(row))

	for i, name := range row {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if name != "" {
			h[name] = i
		}
	}

	for _, column := range requiredColumns {
		if _, ok := h[column]; !ok {
			return nil, domain.NewError(errcodes.InvalidReferenceData, fmt.Sprintf("missing column %q", column))
		}
	}

	return h, nil
}

// cell допускает короткие строки: таблицы отбрасывают пустые ячейки в конце.
func (h header) cell(row []string, column string) string {
	i, ok := h[column]
	if !ok || i >= len(row) {
		return ""
	}

	return row[i]
}

func parseRecords(records [][]string) ([]entity.SimilarGroup, error) {
	if len(records) == 0 {
		return nil, domain.NewError(errcodes.InvalidReferenceData, "empty reference file")
	}

	h, err := newHeader(records[0])
	if err != nil {
		return nil, err
	}

	groups := make([]entity.SimilarGroup, 0, len(records)-1)

	for i, row := range records[1:] {
		if isBlank(row) {
			continue
		}

		group, err := parseRow(h, row)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InvalidReferenceData, fmt.Sprintf("row %d", i+2))
		}

		groups = append(groups, group)
	}

	return groups, nil
}

func parseRow(h header, row []string) (entity.SimilarGroup, error) {
	code, err := value.ParseGroupCode(strings.TrimSpace(h.cell(row, ColumnGroupCode)))
	if err != nil {
		return entity.SimilarGroup{}, fmt.Errorf("group_code: %w", err)
	}

	classification := strings.TrimSpace(h.cell(row, ColumnClassification))
	if classification == "" {
		return entity.SimilarGroup{}, errEmptyClassification
	}

	related, err := value.ParseRelatedCodes(h.cell(row, ColumnRelatedCodes))
	if err != nil {
		return entity.SimilarGroup{}, fmt.Errorf("related_codes: %w", err)
	}

	return entity.SimilarGroup{
		GroupCode:      code,
		Classification: classification,
		GeneralSimilar: parseYes(h.cell(row, ColumnGeneralSimilar)),
		RemarkSimilar:  parseYes(h.cell(row, ColumnRemarkSimilar)),
		RelatedCodes:   related,
	}, nil
}

// parseYes считает "yes" в любом регистре истиной, всё остальное ложью.
func parseYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
