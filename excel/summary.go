// Package excel renders a closed day summary as an xlsx workbook.
package excel

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"

	"github.com/bancaday/banca"
)

// SummaryXLSX builds a single-sheet workbook from a day summary: final
// balances, the settlement plan, the session log and the day totals. The
// summary carries only the session count, so the log is passed alongside.
func SummaryXLSX(s *banca.DaySummary, sessions []banca.Session, currency string) ([]byte, error) {
	xlsx := excelize.NewFile()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "banca",
		DocSecurity: 2,
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())

	_ = xlsx.SetColWidth(sheet, "A", "A", 25)
	_ = xlsx.SetColWidth(sheet, "B", "D", 15)

	writeSummarySheet(xlsx, sheet, s, sessions, currency)
	_ = xlsx.SetSheetName(sheet, "Day Summary")

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(xlsx *excelize.File, sheet string, s *banca.DaySummary, sessions []banca.Session, currency string) {
	row := 1

	row = writeHeader(xlsx, sheet, row, "Balances", "Name", "Amount")
	for _, name := range s.Balances.Names() {
		amount, _ := s.Balances.Get(name)
		_ = xlsx.SetCellValue(sheet, cell('A', row), name)
		_ = xlsx.SetCellValue(sheet, cell('B', row), amount)
		styleRow(xlsx, sheet, row)
		row++
	}
	if s.Drift != 0 {
		_ = xlsx.SetCellValue(sheet, cell('A', row), fmt.Sprintf("Drift absorbed by %s", s.Reference))
		_ = xlsx.SetCellValue(sheet, cell('B', row), s.Drift)
		style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontItalic(), moneyFormat()))
		_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('B', row), style)
		row++
	}
	row++

	row = writeHeader(xlsx, sheet, row, "Settlement", "From", "To", "Amount")
	if len(s.Plan) == 0 {
		_ = xlsx.SetCellValue(sheet, cell('A', row), "Nothing to settle")
		row++
	}
	for _, tr := range s.Plan {
		_ = xlsx.SetCellValue(sheet, cell('A', row), tr.From)
		_ = xlsx.SetCellValue(sheet, cell('B', row), tr.To)
		_ = xlsx.SetCellValue(sheet, cell('C', row), tr.Amount)
		style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), moneyFormat()))
		_ = xlsx.SetCellStyle(sheet, cell('C', row), cell('C', row), style)
		row++
	}
	row++

	row = writeHeader(xlsx, sheet, row, "Sessions", "Host", "Invested", "Final", "Result")
	for i, sess := range sessions {
		_ = xlsx.SetCellValue(sheet, cell('A', row), fmt.Sprintf("#%d %s", i+1, sess.Host))
		_ = xlsx.SetCellValue(sheet, cell('B', row), sess.TotalInvested)
		_ = xlsx.SetCellValue(sheet, cell('C', row), sess.FinalAmount)
		_ = xlsx.SetCellValue(sheet, cell('D', row), sess.Result())
		style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), moneyFormat()))
		_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('D', row), style)
		row++
	}

	_ = xlsx.SetCellValue(sheet, cell('A', row), "Day total")
	_ = xlsx.SetCellValue(sheet, cell('B', row), s.TotalInvested)
	_ = xlsx.SetCellValue(sheet, cell('D', row), s.TotalResult)
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), moneyFormat(), thickBorder("top")))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('D', row), style)

	_ = xlsx.SetCellValue(sheet, cell('D', 1), currency)
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontItalic(), textAlignment("right")))
	_ = xlsx.SetCellStyle(sheet, cell('D', 1), cell('D', 1), style)
}

func writeHeader(xlsx *excelize.File, sheet string, row int, title string, cols ...string) int {
	_ = xlsx.SetCellValue(sheet, cell('A', row), title)
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thickBorder("bottom")))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('D', row), style)
	row++

	col := 'A'
	for _, c := range cols {
		_ = xlsx.SetCellValue(sheet, cell(col, row), c)
		col++
	}
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom")))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('D', row), style)
	return row + 1
}

func styleRow(xlsx *excelize.File, sheet string, row int) {
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle()))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('A', row), style)
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), moneyFormat()))
	_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('D', row), style)
}

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}

func defaultStyle() *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFFFFF"},
			Pattern: 1,
		},
	}
}

func moneyFormat() *excelize.Style {
	fmt := "#,##0.00"
	return &excelize.Style{
		CustomNumFmt: &fmt,
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func fontItalic() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Italic: true,
		},
	}
}

func textAlignment(a string) *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: a,
		},
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 1,
		})
	}
	return s
}

func thickBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 2,
		})
	}
	return s
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}
