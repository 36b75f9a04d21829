package pipeline

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows into the first worksheet of an in-memory
// workbook. Nil values leave the cell unset.
func buildWorkbook(t *testing.T, rows ...[]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("set cell %s: %v", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestPipelineSources(t *testing.T) {
	if got := (CoStar{}).Source(); got != "CoStar" {
		t.Errorf("CoStar Source() = %q, want %q", got, "CoStar")
	}
	if got := (CREXi{}).Source(); got != "CREXi" {
		t.Errorf("CREXi Source() = %q, want %q", got, "CREXi")
	}
}
