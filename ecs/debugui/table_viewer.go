package debugui

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/slotecs/ecs"
)

func NewTableViewer() TableViewer {
	return TableViewer{
		sortColumn: 1,
	}
}

// Render draws one row per component table. It returns the name of the table
// clicked this frame, or "".
func (tv *TableViewer) Render(w *ecs.World) string {
	if !imgui.BeginV("Component Tables", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return ""
	}
	defer imgui.End()

	stats := w.CollectStats()
	tv.rows = stats.TableBreakdown
	sortTables(tv.rows, tv.sortColumn, tv.sortAscending)

	imgui.Text(fmt.Sprintf("Slots: %d (%d free)", stats.SlotCount, stats.FreeSlotCount))

	highest := 0
	for _, row := range tv.rows {
		highest = max(highest, row.RowCount)
	}

	var clicked string

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ComponentTables", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Rows")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			tv.sortColumn = int(spec.ColumnIndex())
			tv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortTables(tv.rows, tv.sortColumn, tv.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range tv.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(row.Name, tv.selected == row.Name, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				tv.selected = row.Name
				clicked = row.Name
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.RowCount))

			if highest > 0 {
				barWidth := float32(row.RowCount) / float32(highest) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	return clicked
}

// sortTables orders by name (column 0) or row count (column 1). Ties keep
// registration order.
func sortTables(rows []ecs.TableStats, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b ecs.TableStats) int {
		var c int
		if column == 0 {
			c = cmp.Compare(a.Name, b.Name)
		} else {
			c = cmp.Compare(a.RowCount, b.RowCount)
		}
		if !ascending {
			return -c
		}
		return c
	})
}
