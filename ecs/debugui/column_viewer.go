package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/chronos/ecs"
)

const (
	sortByType = iota
	sortByCount
)

// ColumnViewer lists component columns in a sortable table.
type ColumnViewer struct {
	sortColumn    int
	sortAscending bool
	selected      string
}

func NewColumnViewer() *ColumnViewer {
	return &ColumnViewer{sortColumn: sortByCount}
}

// Selected returns the type name of the last clicked column.
func (cv *ColumnViewer) Selected() string {
	return cv.selected
}

func (cv *ColumnViewer) Render(stats ecs.Stats) {
	if !imgui.BeginV("Component Columns", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	columns := append([]ecs.ColumnStats(nil), stats.Columns...)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ColumnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Coverage")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			cv.sortColumn = int(spec.ColumnIndex())
			cv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		sortColumns(columns, cv.sortColumn, cv.sortAscending)

		for _, col := range columns {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(col.Type, cv.selected == col.Type, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				cv.selected = col.Type
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", col.Count))

			imgui.TableNextColumn()
			share := coverage(col, stats.EntityCount)
			imgui.Text(fmt.Sprintf("%.0f%%", share*100))
			imgui.SameLine()
			drawList := imgui.WindowDrawList()
			pos := imgui.CursorScreenPos()
			color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
			drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+share*80.0, pos.Y+10), color)
		}

		imgui.EndTable()
	}

	imgui.End()
}

// coverage is the fraction of live entities holding the column's component.
func coverage(col ecs.ColumnStats, entityCount int) float32 {
	if entityCount == 0 {
		return 0
	}
	return float32(col.Count) / float32(entityCount)
}

func sortColumns(columns []ecs.ColumnStats, by int, ascending bool) {
	sort.SliceStable(columns, func(i, j int) bool {
		a, b := columns[i], columns[j]
		var less bool

		switch by {
		case sortByType:
			less = a.Type < b.Type
		default:
			if a.Count == b.Count {
				return a.Type < b.Type
			}
			less = a.Count < b.Count
		}

		if !ascending {
			return !less
		}
		return less
	})
}
