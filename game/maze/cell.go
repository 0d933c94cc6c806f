package maze

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side of the cell.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool
}

// CellFromDescriptor builds a Cell from a wire wall descriptor, a list of
// direction names for the sides of the cell that carry a wall.
func CellFromDescriptor(descriptor []string) Cell {
	var c Cell
	for _, wall := range descriptor {
		switch Direction(wall) {
		case North:
			c.NorthWall = true
		case South:
			c.SouthWall = true
		case East:
			c.EastWall = true
		case West:
			c.WestWall = true
		}
	}
	return c
}

// Descriptor returns the wire wall descriptor for the cell, listing the
// sides that carry a wall in the fixed north, south, east, west order.
func (c Cell) Descriptor() []string {
	descriptor := make([]string, 0, 4)
	if c.NorthWall {
		descriptor = append(descriptor, string(North))
	}
	if c.SouthWall {
		descriptor = append(descriptor, string(South))
	}
	if c.EastWall {
		descriptor = append(descriptor, string(East))
	}
	if c.WestWall {
		descriptor = append(descriptor, string(West))
	}
	return descriptor
}
