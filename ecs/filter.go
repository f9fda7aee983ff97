package ecs

// EntityFilter decides whether an entity takes part in a query.
type EntityFilter interface {
	Filter(id EntityId) bool
}

// FilterFunc adapts a function to EntityFilter.
type FilterFunc func(id EntityId) bool

func (f FilterFunc) Filter(id EntityId) bool {
	return f(id)
}

// IsEntity accepts exactly id.
func IsEntity(id EntityId) EntityFilter {
	return FilterFunc(func(other EntityId) bool {
		return other == id
	})
}

// IsNotEntity accepts everything but id.
func IsNotEntity(id EntityId) EntityFilter {
	return FilterFunc(func(other EntityId) bool {
		return other != id
	})
}

// AnyOf accepts the listed ids.
func AnyOf(ids ...EntityId) EntityFilter {
	set := make(map[EntityId]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return FilterFunc(func(id EntityId) bool {
		_, ok := set[id]
		return ok
	})
}

// And accepts entities accepted by every filter.
func And(filters ...EntityFilter) EntityFilter {
	return FilterFunc(func(id EntityId) bool {
		for _, f := range filters {
			if !f.Filter(id) {
				return false
			}
		}
		return true
	})
}

// Not inverts filter.
func Not(filter EntityFilter) EntityFilter {
	return FilterFunc(func(id EntityId) bool {
		return !filter.Filter(id)
	})
}
