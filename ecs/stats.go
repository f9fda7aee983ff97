package ecs

import "reflect"

// WorldStats provides statistics about a World.
type WorldStats struct {
	TotalEntityCount int
	SlotCount        int
	FreeSlotCount    int
	TableCount       int
	TableBreakdown   []TableStats
	SingletonCount   int
	SingletonTypes   []reflect.Type
}

// TableStats describes one component table.
type TableStats struct {
	Type     reflect.Type
	Name     string
	RowCount int
}

// CollectStats gathers statistics about the current world state.
// Tables are listed in registration order.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		TotalEntityCount: w.entities.len(),
		SlotCount:        w.entities.cap(),
		FreeSlotCount:    len(w.entities.free),
		TableCount:       len(w.order),
		TableBreakdown:   make([]TableStats, len(w.order)),
		SingletonCount:   len(w.singletonOrder),
		SingletonTypes:   w.SingletonTypes(),
	}

	for i, table := range w.order {
		stats.TableBreakdown[i] = TableStats{
			Type:     table.Type(),
			Name:     table.Type().String(),
			RowCount: table.Len(),
		}
	}

	return stats
}
