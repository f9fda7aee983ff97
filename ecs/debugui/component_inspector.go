package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/slotecs/ecs"
)

func NewComponentInspector() ComponentInspector {
	return ComponentInspector{}
}

// Select changes the inspected entity.
func (ci *ComponentInspector) Select(id ecs.EntityId) {
	ci.selected = id
}

// Selected returns the inspected entity.
func (ci *ComponentInspector) Selected() ecs.EntityId {
	return ci.selected
}

func (ci *ComponentInspector) Render(w *ecs.World) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if ci.selected.IsZero() {
		imgui.Text("No entity selected")
		return
	}

	if !w.IsAlive(ci.selected) {
		imgui.Text(fmt.Sprintf("Entity %s is no longer alive", ci.selected))
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", ci.selected))
	imgui.Text(fmt.Sprintf("Slot %d, generation %d", ci.selected.Index(), ci.selected.Generation()))
	imgui.Separator()

	for _, compType := range w.ComponentTypes(ci.selected) {
		component := w.ComponentOf(ci.selected, compType)
		if component == nil {
			continue
		}

		if imgui.TreeNodeStr(compType.String()) {
			renderValue(compType.Name(), reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}
}

// renderValue draws val, which must be addressable for edits to stick.
func renderValue(name string, val reflect.Value) {
	if val.Kind() != reflect.Struct {
		renderField(name, val)
		return
	}

	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		renderField(field.Name, fieldVal)
	}
}

func renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	label := fmt.Sprintf("##%s", name)

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if val.Type() == reflect.TypeFor[ecs.EntityId]() {
			imgui.Text(fmt.Sprintf("%s: %s", name, ecs.EntityId(val.Uint())))
			return
		}
		var v int32
		if val.CanInt() {
			v = int32(val.Int())
		} else {
			v = int32(val.Uint())
		}
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			setScalar(val, v)
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			setScalar(val, v)
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			setScalar(val, v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) {
			setScalar(val, v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderValue(name, val)
			imgui.TreePop()
		}

	case reflect.Slice, reflect.Array:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: <%s>", name, val.Type()))
		}
	}
}
