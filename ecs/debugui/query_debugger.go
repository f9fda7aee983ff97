package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/slotecs/ecs"
)

const queryDebuggerListLimit = 50

func NewQueryDebugger() QueryDebugger {
	return QueryDebugger{
		selected: make(map[reflect.Type]bool),
	}
}

func (qd *QueryDebugger) Render(w *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		clear(qd.selected)
	}

	registered := w.RegisteredTypes()
	for _, compType := range registered {
		selected := qd.selected[compType]
		if imgui.Checkbox(compType.String(), &selected) {
			if selected {
				qd.selected[compType] = true
			} else {
				delete(qd.selected, compType)
			}
		}
	}

	imgui.Separator()

	required := qd.requiredTypes(registered)
	if len(required) == 0 {
		imgui.Text("No component types selected")
		return
	}

	matching := matchingEntities(w, required)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))

	if imgui.TreeNodeStr("Entities") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryEntityTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity")
			imgui.TableSetupColumn("All Components")
			imgui.TableHeadersRow()

			for _, id := range matching[:min(len(matching), queryDebuggerListLimit)] {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(id.String())

				imgui.TableSetColumnIndex(1)
				types := w.ComponentTypes(id)
				names := make([]string, len(types))
				for i, t := range types {
					names[i] = t.String()
				}
				imgui.Text(strings.Join(names, ", "))
			}

			imgui.EndTable()
		}
		if len(matching) > queryDebuggerListLimit {
			imgui.Text(fmt.Sprintf("... and %d more", len(matching)-queryDebuggerListLimit))
		}
		imgui.TreePop()
	}
}

// requiredTypes returns the picked types in registration order.
func (qd *QueryDebugger) requiredTypes(registered []reflect.Type) []reflect.Type {
	var required []reflect.Type
	for _, t := range registered {
		if qd.selected[t] {
			required = append(required, t)
		}
	}
	return required
}

// matchingEntities lists, in slot order, the live entities carrying every type in required.
func matchingEntities(w *ecs.World, required []reflect.Type) []ecs.EntityId {
	var matching []ecs.EntityId
	for id := range w.Entities() {
		if hasAll(w, id, required) {
			matching = append(matching, id)
		}
	}
	return matching
}

func hasAll(w *ecs.World, id ecs.EntityId, required []reflect.Type) bool {
	for _, t := range required {
		if !w.HasComponent(id, t) {
			return false
		}
	}
	return true
}
