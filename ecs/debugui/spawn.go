package debugui

import "github.com/plus3/slotecs/ecs"

// SpawnDebugUI spawns one of each debug panel into w. Register a PanelSystem
// to render them.
func SpawnDebugUI(w *ecs.World) {
	w.Spawn(NewEntityBrowser(100))
	w.Spawn(NewComponentInspector())
	w.Spawn(NewTableViewer())
	w.Spawn(NewPerformanceStats(120))
	w.Spawn(NewQueryDebugger())
}

// RegisterComponents registers the ImGui and debug panel component types.
// ImguiInputState is a singleton and needs no registration.
func RegisterComponents(r ecs.Registrar) {
	ecs.RegisterComponent[ImguiItem](r)
	ecs.RegisterComponent[EntityBrowser](r)
	ecs.RegisterComponent[ComponentInspector](r)
	ecs.RegisterComponent[TableViewer](r)
	ecs.RegisterComponent[PerformanceStats](r)
	ecs.RegisterComponent[QueryDebugger](r)
}
