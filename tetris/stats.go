package tetris

import "github.com/kamstrup/intmap"

// MaxLinesPerLock is the most rows a single lock can clear: the tallest
// piece spans four rows.
const MaxLinesPerLock = maxShapeSide

// Stats summarizes a game.
type Stats struct {
	// Spawned counts generated pieces per type, including the queued next piece.
	Spawned [ShapeCount]int
	Locked  int
	Lines   int
	// Clears counts locks by the number of lines they cleared; Clears[0] is
	// locks that cleared nothing. The last slot also counts larger clears,
	// which only a preset grid with complete rows can produce.
	Clears [MaxLinesPerLock + 1]int
}

type counters struct {
	spawned *intmap.Map[ShapeType, int]
	clears  *intmap.Map[int, int]
	locked  int
	lines   int
}

func newCounters() counters {
	return counters{
		spawned: intmap.New[ShapeType, int](ShapeCount),
		clears:  intmap.New[int, int](MaxLinesPerLock + 1),
	}
}

func (c *counters) recordSpawn(t ShapeType) {
	n, _ := c.spawned.Get(t)
	c.spawned.Put(t, n+1)
}

func (c *counters) recordLock(lines int) {
	c.locked++
	c.lines += lines
	bucket := min(lines, MaxLinesPerLock)
	n, _ := c.clears.Get(bucket)
	c.clears.Put(bucket, n+1)
}

func (c *counters) snapshot() Stats {
	stats := Stats{Locked: c.locked, Lines: c.lines}
	for t := ShapeType(0); t < ShapeCount; t++ {
		stats.Spawned[t], _ = c.spawned.Get(t)
	}
	for lines := range stats.Clears {
		stats.Clears[lines], _ = c.clears.Get(lines)
	}
	return stats
}
