package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sudoku-classifier/internal/catalogue"
	"sudoku-classifier/internal/grid"
	"sudoku-classifier/internal/puzzle"
	"sudoku-classifier/internal/solver"
	"sudoku-classifier/pkg/config"
	"sudoku-classifier/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires up every HTTP endpoint this service exposes.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/classify", classifyHandler)
		api.GET("/puzzle/:seed", puzzleHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

type solveRequest struct {
	Puzzle string `json:"puzzle"`
}

func solveHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := puzzle.Parse(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	used, err := solver.NewFixedOrder().Solve(g)
	switch err {
	case nil:
		names := make([]string, len(used))
		for i, k := range used {
			names[i] = k.String()
		}
		c.JSON(http.StatusOK, gin.H{
			"solved": true,
			"used":   names,
			"grid":   puzzle.Format(g),
		})
	case grid.ErrUnsolvable:
		c.JSON(http.StatusOK, gin.H{
			"solved":     false,
			"unsolvable": true,
			"grid":       puzzle.Format(g),
		})
	default:
		// grid.ErrInvalidBoard or a *grid.Contradiction raised mid-propagation.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

type classifyRequest struct {
	Puzzle string `json:"puzzle"`
}

func classifyHandler(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := puzzle.Parse(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	used, err := solver.NewProgressive().Solve(g)
	switch err {
	case nil:
		names := make([]string, len(used))
		for i, k := range used {
			names[i] = k.String()
		}
		c.JSON(http.StatusOK, gin.H{
			"solved":     true,
			"techniques": names,
		})
	case grid.ErrUnsolvable:
		c.JSON(http.StatusOK, gin.H{
			"solved":     false,
			"unsolvable": true,
		})
	case grid.ErrInvalidBoard:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func puzzleHandler(c *gin.Context) {
	seed := c.Param("seed")
	difficulty := c.DefaultQuery("difficulty", constants.DifficultyEasy)

	store := catalogue.Global()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "puzzle catalogue not loaded"})
		return
	}

	puzzleStr, solutionStr, index, err := store.PuzzleBySeed(seed, difficulty)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seed":       seed,
		"difficulty": difficulty,
		"index":      index,
		"puzzle":     puzzleStr,
		"solution":   solutionStr,
	})
}
