// Package schedule exports a plan's room, opening and furniture schedules
// as an xlsx workbook.
//
// The workbook has three sheets:
//
//   - Rooms: one row per room plus a total area row
//   - Openings: doors then windows, with the wall each sits on
//   - Furniture: one row per placed item, joined with catalog dimensions
//
// It is an inventory listing; no costs are computed.
package schedule

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/plansmith/pkg/catalog"
	"github.com/matzehuels/plansmith/pkg/core/plan"
)

// Sheet names.
const (
	SheetRooms     = "Rooms"
	SheetOpenings  = "Openings"
	SheetFurniture = "Furniture"
)

var (
	roomHeader      = []any{"ID", "Name", "Type", "X (m)", "Y (m)", "Width (m)", "Depth (m)", "Area (m²)", "Floor", "Floor Color"}
	openingHeader   = []any{"ID", "Kind", "Wall", "Position (m)", "Width (m)", "Height (m)", "Sill (m)"}
	furnitureHeader = []any{"ID", "Room", "Catalog ID", "Name", "Category", "X (m)", "Y (m)", "Rotation (°)", "Width (m)", "Depth (m)", "Height (m)"}
)

// Write encodes the schedules of p as xlsx to w. lookup supplies furniture
// names and dimensions; items it does not know are listed with blanks.
func Write(w io.Writer, p *plan.Plan, lookup catalog.Lookup) error {
	f, err := build(p, lookup)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Bytes returns the xlsx encoding of p's schedules.
func Bytes(p *plan.Plan, lookup catalog.Lookup) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, p, lookup); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func build(p *plan.Plan, lookup catalog.Lookup) (*excelize.File, error) {
	if lookup == nil {
		lookup = catalog.Default()
	}
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetRooms); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetOpenings, SheetFurniture} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("add sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create style: %w", err)
	}

	steps := []func() error{
		func() error { return writeSheet(f, SheetRooms, roomHeader, roomRows(p), bold) },
		func() error { return writeSheet(f, SheetOpenings, openingHeader, openingRows(p), bold) },
		func() error { return writeSheet(f, SheetFurniture, furnitureHeader, furnitureRows(p, lookup), bold) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return fmt.Errorf("%s header style: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", last, 14); err != nil {
		return fmt.Errorf("%s column width: %w", sheet, err)
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func roomRows(p *plan.Plan) [][]any {
	rows := make([][]any, 0, len(p.Rooms)+1)
	for _, r := range p.Rooms {
		rows = append(rows, []any{
			r.ID, r.Name, string(r.Type), r.X, r.Y, r.Width, r.Depth, r.Area, r.FloorMaterial, r.FloorColor,
		})
	}
	rows = append(rows, []any{"", "Total", "", "", "", "", "", p.TotalArea()})
	return rows
}

func openingRows(p *plan.Plan) [][]any {
	rows := make([][]any, 0, len(p.Doors)+len(p.Windows))
	for _, d := range p.Doors {
		rows = append(rows, []any{d.ID, "door", d.WallID, d.Position, d.Width, d.Height, ""})
	}
	for _, w := range p.Windows {
		rows = append(rows, []any{w.ID, "window", w.WallID, w.Position, w.Width, w.Height, w.SillHeight})
	}
	return rows
}

func furnitureRows(p *plan.Plan, lookup catalog.Lookup) [][]any {
	roomNames := make(map[string]string, len(p.Rooms))
	for _, r := range p.Rooms {
		roomNames[r.ID] = r.Name
	}

	rows := make([][]any, 0, len(p.Furniture))
	for _, it := range p.Furniture {
		row := []any{it.ID, roomNames[it.RoomID], it.CatalogID}
		if c, ok := lookup.Item(it.CatalogID); ok {
			row = append(row, c.Name, c.Category)
		} else {
			row = append(row, "", "")
		}
		row = append(row, it.Position.X, it.Position.Y, it.Rotation)
		if c, ok := lookup.Item(it.CatalogID); ok {
			row = append(row, c.Width*it.Scale, c.Depth*it.Scale, c.Height*it.Scale)
		}
		rows = append(rows, row)
	}
	return rows
}
