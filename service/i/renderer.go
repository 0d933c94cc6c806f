package i

// Renderer displays one frame of the maze per decision cycle.
type Renderer interface {
	Render(frame string) error
}
