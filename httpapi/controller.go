package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/firegrid/fire"
	"github.com/katalvlaran/firegrid/grid"
	"github.com/katalvlaran/firegrid/mazegen"
	"github.com/katalvlaran/firegrid/search"
)

// ScenarioController serves maze solving and generation.
type ScenarioController struct{}

// NewScenarioController initializes a ScenarioController.
func NewScenarioController() *ScenarioController {
	return &ScenarioController{}
}

// Register registers the scenario routes.
func (sc *ScenarioController) Register(route *gin.RouterGroup) {
	route.POST("/solve", sc.solve)
	route.GET("/maze", sc.maze)
}

// solve runs one search over a client-supplied maze. Malformed grids and
// unknown option names are client errors; a maze without a safe route is
// a normal 200 response with found=false.
func (sc *ScenarioController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	g, err := grid.Parse(strings.Join(request.Grid, "\n"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	heuristicName := request.Heuristic
	if heuristicName == "" {
		heuristicName = search.Manhattan.String()
	}
	h, err := search.ParseHeuristic(heuristicName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	fireName := request.Fire
	if fireName == "" {
		fireName = fire.Dynamic.String()
	}
	mode, err := fire.ParseMode(fireName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	res, err := search.Search(g, search.WithHeuristic(h), search.WithFireMode(mode))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	response := SolveResponse{
		ID:            uuid.NewString(),
		Found:         res.Found,
		NodesExplored: res.NodesExplored,
		ElapsedMillis: res.ElapsedMillis,
		FireFrames:    fireFrames(g, mode, res),
	}
	for _, s := range res.Path {
		response.Path = append(response.Path, PathStep{Row: s.Cell.Row, Col: s.Cell.Col, Time: s.Time})
	}

	ctx.JSON(http.StatusOK, response)
}

// maze generates a random scenario. Query parameters: rows, cols
// (default 21) and an optional seed for reproducible mazes.
func (sc *ScenarioController) maze(ctx *gin.Context) {
	rows, err := queryInt(ctx, "rows", 21)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	cols, err := queryInt(ctx, "cols", 21)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	var opts []mazegen.Option
	if raw, ok := ctx.GetQuery("seed"); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})

			return
		}
		opts = append(opts, mazegen.WithSeed(seed))
	}

	g, err := mazegen.Generate(rows, cols, opts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, MazeResponse{
		ID:    uuid.NewString(),
		Grid:  strings.Split(g.String(), "\n"),
		Start: CellDTO{Row: g.Start().Row, Col: g.Start().Col},
		Exit:  CellDTO{Row: g.Exit().Row, Col: g.Exit().Col},
	})
}

// fireFrames replays the hazard for the animation: one frame per step from
// 0 through the route's arrival step, or through the full fire growth when
// no route was found. The replay simulator is separate from the one the
// search owned; per-run cache ownership stays intact.
func fireFrames(g *grid.Grid, mode fire.Mode, res search.Result) [][]CellDTO {
	sim, err := fire.NewSimulator(g, mode)
	if err != nil {
		return nil
	}

	last := sim.SettleTime()
	if res.Found {
		last = res.Path[len(res.Path)-1].Time
	}

	frames := make([][]CellDTO, 0, last+1)
	for t := 0; t <= last; t++ {
		burning := sim.BurningAt(t)
		frame := make([]CellDTO, 0, len(burning))
		for _, c := range burning {
			frame = append(frame, CellDTO{Row: c.Row, Col: c.Col})
		}
		frames = append(frames, frame)
	}

	return frames
}

// queryInt reads an integer query parameter with a default.
func queryInt(ctx *gin.Context, name string, def int) (int, error) {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return def, nil
	}

	return strconv.Atoi(raw)
}
