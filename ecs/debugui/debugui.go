// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It manages ImGui rendering and input state through ECS components and systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/slotecs/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render functions.
// It also updates the ImguiInputState singleton, when present, with current input capture state.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// PanelSystem renders the built-in debug panels spawned by SpawnDebugUI.
// Scheduler is optional; without it the performance panel omits system timings.
type PanelSystem struct {
	Scheduler *ecs.Scheduler

	Browsers   ecs.Query[struct{ *EntityBrowser }]
	Inspectors ecs.Query[struct{ *ComponentInspector }]
	Tables     ecs.Query[struct{ *TableViewer }]
	Queries    ecs.Query[struct{ *QueryDebugger }]
	Stats      ecs.Query[struct{ *PerformanceStats }]
}

// Execute defers one render call per panel. The first browser drives every
// inspector's selection and is filtered by clicks in the table viewers.
func (p *PanelSystem) Execute(frame *ecs.UpdateFrame) {
	w := frame.World
	dt := float32(frame.DeltaTime)

	var primary *EntityBrowser
	for item := range p.Browsers.Values() {
		browser := item.EntityBrowser
		if primary == nil {
			primary = browser
		}
		frame.Commands.Defer(func() { browser.Render(w) })
	}

	for item := range p.Tables.Values() {
		viewer := item.TableViewer
		frame.Commands.Defer(func() {
			if clicked := viewer.Render(w); clicked != "" && primary != nil {
				primary.FilterByTable(clicked)
			}
		})
	}

	for item := range p.Inspectors.Values() {
		inspector := item.ComponentInspector
		frame.Commands.Defer(func() {
			if primary != nil {
				inspector.Select(primary.Selected())
			}
			inspector.Render(w)
		})
	}

	for item := range p.Queries.Values() {
		debugger := item.QueryDebugger
		frame.Commands.Defer(func() { debugger.Render(w) })
	}

	for item := range p.Stats.Values() {
		stats := item.PerformanceStats
		frame.Commands.Defer(func() { stats.Render(w, p.Scheduler, dt) })
	}
}
