package debugui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/slotecs/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	ComponentTypes []string
}

type entityBrowserCache struct {
	entities      []EntityInfo
	entityCount   int
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowser(perPage int) EntityBrowser {
	return EntityBrowser{
		cache: &entityBrowserCache{
			entityCount:   -1,
			sortAscending: true,
		},
		perPage: perPage,
	}
}

// Selected returns the entity picked in the browser, or NilEntity.
func (eb *EntityBrowser) Selected() ecs.EntityId {
	return eb.selected
}

// FilterByTable restricts the listing to entities carrying the named component type.
func (eb *EntityBrowser) FilterByTable(name string) {
	eb.filterTable = name
	eb.currentPage = 0
}

func (eb *EntityBrowser) Render(w *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	refresh := imgui.Button("Refresh")
	imgui.SameLine()
	eb.rebuildCacheIfNeeded(w, refresh)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterTable = ""
	}

	filtered := filterEntities(eb.cache.entities, eb.filterText, eb.filterTable)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortEntities(eb.cache.entities, eb.cache.sortColumn, eb.cache.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		start, end := pageBounds(len(filtered), eb.currentPage, eb.perPage)
		for _, entity := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(entity.ID.String(), eb.selected == entity.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(entity.ComponentTypes)))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.perPage {
		totalPages := (len(filtered) + eb.perPage - 1) / eb.perPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}
}

// rebuildCacheIfNeeded refreshes the listing when the live count changes.
// Component inserts and removals only show up after a manual refresh.
func (eb *EntityBrowser) rebuildCacheIfNeeded(w *ecs.World, force bool) {
	if !force && eb.cache.entityCount == w.Len() {
		return
	}
	eb.cache.entities = collectEntities(w)
	eb.cache.entityCount = w.Len()
	sortEntities(eb.cache.entities, eb.cache.sortColumn, eb.cache.sortAscending)
}

func collectEntities(w *ecs.World) []EntityInfo {
	entities := make([]EntityInfo, 0, w.Len())
	for id := range w.Entities() {
		types := w.ComponentTypes(id)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}
		entities = append(entities, EntityInfo{ID: id, ComponentTypes: names})
	}
	return entities
}

func sortEntities(entities []EntityInfo, column int, ascending bool) {
	slices.SortStableFunc(entities, func(a, b EntityInfo) int {
		var c int
		switch column {
		case 1:
			c = strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
		case 2:
			c = len(a.ComponentTypes) - len(b.ComponentTypes)
		default:
			c = compareIds(a.ID, b.ID)
		}
		if !ascending {
			return -c
		}
		return c
	})
}

func compareIds(a, b ecs.EntityId) int {
	switch {
	case a.Index() != b.Index():
		return int(a.Index()) - int(b.Index())
	case a.Generation() < b.Generation():
		return -1
	case a.Generation() > b.Generation():
		return 1
	}
	return 0
}

// filterEntities keeps entities whose id or component names contain text
// (case-insensitive) and, when table is set, that carry that component.
func filterEntities(entities []EntityInfo, text, table string) []EntityInfo {
	if text == "" && table == "" {
		return entities
	}

	filtered := make([]EntityInfo, 0, len(entities))
	needle := strings.ToLower(text)

	for _, entity := range entities {
		if table != "" && !slices.Contains(entity.ComponentTypes, table) {
			continue
		}

		if needle != "" {
			components := strings.ToLower(strings.Join(entity.ComponentTypes, " "))
			if !strings.Contains(entity.ID.String(), needle) && !strings.Contains(components, needle) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}

	return filtered
}

func pageBounds(total, page, perPage int) (int, int) {
	if perPage <= 0 {
		return 0, total
	}
	start := min(page*perPage, total)
	end := min(start+perPage, total)
	return start, end
}
