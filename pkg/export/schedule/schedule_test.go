package schedule

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/plansmith/pkg/catalog"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/ids"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

func workbook(t *testing.T, p *plan.Plan, lookup catalog.Lookup) *excelize.File {
	t.Helper()
	data, err := Bytes(p, lookup)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func generated(t *testing.T) *plan.Plan {
	t.Helper()
	res, err := wizard.Generate(wizard.Config{
		ProjectType: plan.House,
		RoomCount:   3,
		TotalSize:   70,
		Budget:      plan.Medium,
	}, wizard.Deps{IDs: ids.NewSequential()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return res.Plan
}

func TestSheets(t *testing.T) {
	f := workbook(t, generated(t), nil)
	got := f.GetSheetList()
	want := []string{SheetRooms, SheetOpenings, SheetFurniture}
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sheet %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRoomsSheet(t *testing.T) {
	p := generated(t)
	rows, err := workbook(t, p, nil).GetRows(SheetRooms)
	if err != nil {
		t.Fatal(err)
	}
	// header + rooms + total
	if len(rows) != len(p.Rooms)+2 {
		t.Fatalf("rows = %d, want %d", len(rows), len(p.Rooms)+2)
	}
	if rows[0][0] != "ID" || rows[1][1] != "Living Room" || rows[1][2] != "living" {
		t.Errorf("unexpected rows: %v", rows[:2])
	}
	total := rows[len(rows)-1]
	if total[1] != "Total" || total[7] != "61.5" {
		t.Errorf("total row = %v", total)
	}
}

func TestOpeningsSheet(t *testing.T) {
	p := generated(t)
	rows, err := workbook(t, p, nil).GetRows(SheetOpenings)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+len(p.Doors)+len(p.Windows) {
		t.Fatalf("rows = %d, want %d", len(rows), 1+len(p.Doors)+len(p.Windows))
	}
	if rows[1][1] != "door" || rows[len(rows)-1][1] != "window" {
		t.Errorf("doors should precede windows: %v / %v", rows[1], rows[len(rows)-1])
	}
}

func TestFurnitureSheet(t *testing.T) {
	p := generated(t)
	rows, err := workbook(t, p, catalog.Default()).GetRows(SheetFurniture)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+len(p.Furniture) {
		t.Fatalf("rows = %d, want %d", len(rows), 1+len(p.Furniture))
	}
	first := rows[1]
	if first[1] != "Living Room" || first[2] != "sofa-3" || first[3] != "Three-Seat Sofa" {
		t.Errorf("first furniture row = %v", first)
	}
	if first[8] != "2.2" {
		t.Errorf("width = %q, want 2.2", first[8])
	}
}

func TestFurnitureUnknownCatalogItem(t *testing.T) {
	p := generated(t)
	rows, err := workbook(t, p, catalog.New()).GetRows(SheetFurniture)
	if err != nil {
		t.Fatal(err)
	}
	if rows[1][3] != "" {
		t.Errorf("unknown item should have a blank name, got %q", rows[1][3])
	}
}

func TestEmptyPlan(t *testing.T) {
	rows, err := workbook(t, plan.New("plan_1", "Empty", 2.7), nil).GetRows(SheetOpenings)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("empty plan should only have a header, got %d rows", len(rows))
	}
}
