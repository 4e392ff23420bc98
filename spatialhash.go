package main

import "math"

// SpatialHash is a uniform-grid broad phase: it buckets particle indices by
// cell so pairwise collision checks only look at the 3x3 neighborhood of a
// position instead of every particle. It stores indices only, never
// particle data, and is rebuilt from scratch each relaxation pass.
//
// Cell size should be at least twice the largest interaction radius so any
// two overlapping discs land in the same or adjacent cells.
type SpatialHash struct {
	cellSize float64
	cells    map[int64][]int
}

func NewSpatialHash(cellSize float64) *SpatialHash {
	return &SpatialHash{
		cellSize: cellSize,
		cells:    make(map[int64][]int),
	}
}

// cellKey packs the two cell coordinates into one map key.
func cellKey(cx, cy int32) int64 {
	return int64(cx)<<32 | int64(cy)&0xFFFFFFFF
}

func (h *SpatialHash) cellCoords(pos Vec2) (int32, int32) {
	return int32(math.Floor(pos.X / h.cellSize)), int32(math.Floor(pos.Y / h.cellSize))
}

// Clear empties every bucket, keeping capacity for the next rebuild.
func (h *SpatialHash) Clear() {
	for key, bucket := range h.cells {
		h.cells[key] = bucket[:0]
	}
}

// Insert adds a particle index at the given position.
func (h *SpatialHash) Insert(index int, pos Vec2) {
	cx, cy := h.cellCoords(pos)
	key := cellKey(cx, cy)
	h.cells[key] = append(h.cells[key], index)
}

// GetNearby appends every index in the 3x3 cell block around pos to result
// and returns the extended slice. No deduplication; the index of a particle
// at pos itself may be included. Callers reuse and truncate the buffer
// between queries.
func (h *SpatialHash) GetNearby(pos Vec2, result []int) []int {
	cx, cy := h.cellCoords(pos)
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			if bucket, ok := h.cells[cellKey(cx+dx, cy+dy)]; ok {
				result = append(result, bucket...)
			}
		}
	}
	return result
}
