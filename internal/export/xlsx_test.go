package export_test

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pacopablo/finddups/internal/export"
	"github.com/pacopablo/finddups/internal/finddups"
)

func TestWriteWorkbook(t *testing.T) {
	stamp := time.Date(2013, 7, 4, 12, 30, 45, 0, time.UTC)

	result := &finddups.Result{
		ZeroByteCount: 1,
		ZeroByteFiles: []*finddups.FileRecord{
			{Path: "/data/empty", CreatedAt: stamp, ModifiedAt: stamp},
		},
		Groups: []finddups.DuplicateGroup{
			{
				Hash: "deadbeef",
				Files: []*finddups.FileRecord{
					{Path: "/data/a.txt", Size: 5, CreatedAt: stamp, ModifiedAt: stamp, Hash: "deadbeef"},
					{Path: "/data/b.txt", Size: 5, CreatedAt: stamp, ModifiedAt: stamp, Hash: "deadbeef"},
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := export.WriteWorkbook(result, path); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	book, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer book.Close()

	dupRows, err := book.GetRows(export.DuplicatesSheet)
	if err != nil {
		t.Fatalf("read %s: %v", export.DuplicatesSheet, err)
	}

	if len(dupRows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(dupRows))
	}

	wantHeader := []string{"Path", "Hash", "Size", "ctime", "mtime"}
	if !reflect.DeepEqual(dupRows[0], wantHeader) {
		t.Fatalf("expected header %v, got %v", wantHeader, dupRows[0])
	}

	wantRow := []string{"/data/a.txt", "deadbeef", "5", "07/04/2013 12:30:45", "07/04/2013 12:30:45"}
	if !reflect.DeepEqual(dupRows[1], wantRow) {
		t.Fatalf("expected row %v, got %v", wantRow, dupRows[1])
	}

	zeroRows, err := book.GetRows(export.ZeroByteSheet)
	if err != nil {
		t.Fatalf("read %s: %v", export.ZeroByteSheet, err)
	}

	if len(zeroRows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(zeroRows))
	}

	if zeroRows[1][0] != "/data/empty" {
		t.Fatalf("expected zero-byte path, got %v", zeroRows[1])
	}
}
