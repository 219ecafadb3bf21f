package ecs

// Stats is a snapshot of an EntityManager for tooling.
type Stats struct {
	EntityCount int
	IssuedIds   int
	FreeIds     int
	Capacity    int
	Columns     []ColumnStats
}

// ColumnStats describes one component column.
type ColumnStats struct {
	Type  string
	Count int
}

// Stats collects a snapshot of the manager and every column.
func (m *EntityManager) Stats() Stats {
	columns := m.directory.Columns()
	stats := Stats{
		EntityCount: m.EntityCount(),
		IssuedIds:   int(m.nextId),
		FreeIds:     len(m.freeIds),
		Capacity:    m.directory.Capacity(),
		Columns:     make([]ColumnStats, 0, len(columns)),
	}
	for _, col := range columns {
		stats.Columns = append(stats.Columns, ColumnStats{
			Type:  col.Type.String(),
			Count: col.Len,
		})
	}
	return stats
}
