package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// WriteXLSX writes results as a single-sheet workbook using the same column
// schema as the CSV export.
func WriteXLSX(results []model.FinalResult, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, col := range csvColumns {
		header.AddCell().SetString(col)
	}

	for _, r := range results {
		row := sheet.AddRow()
		for _, val := range buildRow(r) {
			row.AddCell().SetString(val)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save xlsx file")
	}
	return nil
}
