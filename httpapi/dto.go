package httpapi

// SolveRequest carries one maze and a (heuristic, fire mode) selection.
// Grid lines use the textual map alphabet: '.', '#', 'D', 'S', 'F'.
type SolveRequest struct {
	Grid      []string `json:"grid" binding:"required"`
	Heuristic string   `json:"heuristic"` // default "manhattan"
	Fire      string   `json:"fire"`      // default "dynamic"
}

// CellDTO is a grid coordinate in a response body.
type CellDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PathStep is one entry of a returned route: a cell and the step at which
// the agent occupies it.
type PathStep struct {
	Row  int `json:"row"`
	Col  int `json:"col"`
	Time int `json:"time"`
}

// SolveResponse reports one search outcome. FireFrames[t] is the burning
// set at step t, covering the whole route (or the full fire growth when no
// route exists), so a front-end can replay the escape as an animation
// without re-simulating anything.
type SolveResponse struct {
	ID            string      `json:"id"`
	Found         bool        `json:"found"`
	Path          []PathStep  `json:"path,omitempty"`
	NodesExplored int         `json:"nodesExplored"`
	ElapsedMillis float64     `json:"elapsedMillis"`
	FireFrames    [][]CellDTO `json:"fireFrames"`
}

// MazeResponse carries a freshly generated maze.
type MazeResponse struct {
	ID    string   `json:"id"`
	Grid  []string `json:"grid"`
	Start CellDTO  `json:"start"`
	Exit  CellDTO  `json:"exit"`
}
