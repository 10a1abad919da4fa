package ecs

// WorldStats summarizes the contents of a World.
type WorldStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	ArchetypeBreakdown []ArchetypeStats
}

// ArchetypeStats describes one archetype table.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats walks the world's archetypes in creation order.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		ArchetypeCount:     len(w.order),
		TotalEntityCount:   len(w.locations),
		ArchetypeBreakdown: make([]ArchetypeStats, 0, len(w.order)),
	}

	for _, archetype := range w.order {
		names := make([]string, len(archetype.types))
		for i, t := range archetype.types {
			names[i] = t.String()
		}
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             archetype.id,
			ComponentTypes: names,
			EntityCount:    archetype.count,
		})
	}

	return stats
}
