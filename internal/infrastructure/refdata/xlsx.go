package refdata

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"similar_groups/internal/domain"
	"similar_groups/pkg/errcodes"
)

// readXLSX читает первый лист книги.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenFile: %w", err)
	}

	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewError(errcodes.InvalidReferenceData, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("excelize.GetRows: %w", err)
	}

	return rows, nil
}
