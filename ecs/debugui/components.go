package debugui

import (
	"reflect"

	"github.com/plus3/slotecs/ecs"
)

// EntityBrowser lists live entities with their component types.
type EntityBrowser struct {
	cache       *entityBrowserCache
	selected    ecs.EntityId
	filterText  string
	filterTable string
	perPage     int
	currentPage int
}

// ComponentInspector shows and edits the components of one entity.
type ComponentInspector struct {
	selected ecs.EntityId
}

// TableViewer lists every component table with its row count.
type TableViewer struct {
	rows          []ecs.TableStats
	selected      string
	sortColumn    int
	sortAscending bool
}

// PerformanceStats plots frame times and scheduler timings.
type PerformanceStats struct {
	frameHistory []float32
	frameIndex   int
}

// QueryDebugger matches live entities against a hand-picked set of component types.
type QueryDebugger struct {
	selected map[reflect.Type]bool
}
