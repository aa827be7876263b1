// Package fixture generates the reference dirty dataset used to exercise
// the validation engine: a small customer table seeded with every issue
// class the checkers detect.
package fixture

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Dataset is a header row plus sparse data rows. A row maps column index
// to cell text; a column absent from the map stays an empty (unset) cell
// in the written workbook, which the engine reads back as missing.
type Dataset struct {
	Headers []string
	Rows    []map[int]string
}

func row(values ...string) map[int]string {
	m := make(map[int]string, len(values))
	for i, v := range values {
		m[i] = v
	}
	return m
}

// Reference returns the 13-row, 6-column customer dataset. Seeded
// issues, by zero-based data row:
//
//	2, 7  missing 회원ID (rows otherwise identical: the full-row duplicate)
//	4     non-numeric 나이
//	5     non-numeric 가격
//	6     unparseable 날짜
//	8     empty-string 나이
//	9     whitespace-only 날짜
//	10    회원ID reuses row 0's key
func Reference() *Dataset {
	ds := &Dataset{
		Headers: []string{"이름", "이메일", "나이", "가격", "날짜", "회원ID"},
		Rows: []map[int]string{
			row("김철수", "kim@example.com", "28", "1500.50", "2024-01-15", "U1"),
			row("이영희", "lee@example.com", "34", "2200.00", "2024-02-20", "U2"),
			row("박민수", "park@example.com", "41", "980.25", "2024-03-05"),
			row("최지은", "choi@example.com", "29", "3100.75", "2024-04-12", "U4"),
			row("정우성", "jung@example.com", "스물여덟", "1250.00", "2024-05-30", "U5"),
			row("한소라", "han@example.com", "33", "가격미정", "2024-06-18", "U6"),
			row("오준호", "oh@example.com", "27", "1800.00", "Invalid Date", "U7"),
			row("박민수", "park@example.com", "41", "980.25", "2024-03-05"),
			row("윤세리", "yoon@example.com", "", "2750.50", "2024-08-22", "U8"),
			row("장도윤", "jang@example.com", "38", "1420.00", "   ", "U9"),
			row("강하늘", "kang@example.com", "25", "990.99", "2024-09-10", "U1"),
			row("서지수", "seo@example.com", "31", "2050.25", "2024-10-03", "U10"),
			row("문가영", "moon@example.com", "26", "1680.00", "2024-11-27", "U11"),
		},
	}
	return ds
}

// Range returns the A1-style rectangle covering the dataset including
// its header row.
func (ds *Dataset) Range() string {
	last, _ := excelize.CoordinatesToCellName(len(ds.Headers), len(ds.Rows)+1)
	return "A1:" + last
}

// WriteXLSX writes the dataset to a workbook. Cells absent from a sparse
// row are simply never set, so they come back as truly missing rather
// than as empty strings.
func WriteXLSX(path, sheet string, ds *Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	for c, h := range ds.Headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, values := range ds.Rows {
		for c := range ds.Headers {
			v, ok := values[c]
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellStr(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
