// Package geometry inspects GeoJSON-like coordinate arrays decoded into
// generic Go values ([]interface{} and float64).
package geometry

// MaxDepth bounds how many list levels are descended when searching for a ring.
// Polygon-with-holes nests rings three levels deep, which is the deepest shape
// the provider returns for a single parcel.
const MaxDepth = 3

// DeepestRing returns the first ring found at the deepest nesting level
// reachable within MaxDepth list levels. A ring is a list of positions and a
// position is a list whose first element is a number. Rings at equal depth
// are resolved in document order. nil is returned when no ring exists.
func DeepestRing(coordinates interface{}) []interface{} {
	ring, _ := findRing(coordinates, 1)
	return ring
}

// PointsCount returns the number of points in the deepest ring, 0 when none
func PointsCount(coordinates interface{}) int {
	return len(DeepestRing(coordinates))
}

func findRing(value interface{}, depth int) ([]interface{}, int) {
	list, ok := value.([]interface{})
	if !ok || len(list) == 0 || depth > MaxDepth {
		return nil, 0
	}

	if isPosition(list[0]) {
		return list, depth
	}

	// A bare position is not a ring
	if isNumber(list[0]) {
		return nil, 0
	}

	var best []interface{}
	bestDepth := 0
	for _, child := range list {
		ring, d := findRing(child, depth+1)
		if ring != nil && d > bestDepth {
			best, bestDepth = ring, d
		}
	}
	return best, bestDepth
}

func isPosition(value interface{}) bool {
	list, ok := value.([]interface{})
	return ok && len(list) > 0 && isNumber(list[0])
}

func isNumber(value interface{}) bool {
	switch value.(type) {
	case float64, float32, int, int64, int32:
		return true
	}
	return false
}
