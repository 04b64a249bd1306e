// Command akariserver exposes solve/hint over HTTP, plus a
// websocket endpoint that streams hints as a player applies moves. Grounded
// on the teacher's cmd/server/main.go startup sequence and
// internal/transport/http/routes.go's handler shapes, with the
// session/scoring/daily-puzzle/JWT features dropped: this façade is
// stateless, matching spec.md §5's "no shared mutable state between solver
// invocations" requirement.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/cuzdav/akari/internal/levelfmt"
	"github.com/cuzdav/akari/internal/solver"
	"github.com/cuzdav/akari/pkg/config"
	"github.com/cuzdav/akari/pkg/constants"
	"github.com/cuzdav/akari/pkg/logging"
)

type levelRequest struct {
	Rows []string `json:"rows" binding:"required"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func registerRoutes(r *gin.Engine, cfg *config.Config, pack *levelfmt.LevelPack) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": constants.APIVersion})
	})

	r.GET("/levels", func(c *gin.Context) {
		if pack == nil {
			c.JSON(http.StatusOK, gin.H{"levels": []string{}})
			return
		}
		names := make([]string, 0, len(pack.Levels))
		for _, lvl := range pack.Levels {
			names = append(names, lvl.Name)
		}
		c.JSON(http.StatusOK, gin.H{"levels": names})
	})

	r.POST("/solve", func(c *gin.Context) {
		var req levelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		board, err := levelfmt.ParseASCII(req.Rows)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sol := solver.SolveWithMaxSteps(board, cfg.MaxSolveSteps)
		c.JSON(http.StatusOK, gin.H{
			"status":      sol.Status.String(),
			"step_count":  sol.StepCount,
			"error_count": sol.ErrorCount,
			"board":       levelfmt.FormatASCII(sol.Position.Board()),
		})
	})

	r.POST("/hint", func(c *gin.Context) {
		var req levelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		board, err := levelfmt.ParseASCII(req.Rows)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		hint := solver.Create(board)
		c.JSON(http.StatusOK, gin.H{
			"reason":        hint.Reason.String(),
			"next_step":     formatCluster(hint.NextStep),
			"explain_steps": formatClusters(hint.ExplainSteps),
		})
	})

	r.GET("/hint/stream", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var req levelRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			board, err := levelfmt.ParseASCII(req.Rows)
			if err != nil {
				conn.WriteJSON(gin.H{"error": err.Error()})
				continue
			}
			hint := solver.Create(board)
			conn.WriteJSON(gin.H{
				"reason":    hint.Reason.String(),
				"next_step": formatCluster(hint.NextStep),
			})
		}
	})
}

func formatCluster(step solver.ExplainStep) []string {
	out := make([]string, 0, len(step.Moves))
	for _, m := range step.Moves {
		out = append(out, m.String())
	}
	return out
}

func formatClusters(steps []solver.ExplainStep) [][]string {
	out := make([][]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, formatCluster(s))
	}
	return out
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.New(cfg.LogPath)

	var pack *levelfmt.LevelPack
	if cfg.LevelPackPath != "" {
		p, err := levelfmt.LoadLevelPack(cfg.LevelPackPath)
		if err != nil {
			logger.Warn("failed to load level pack, continuing without it", "path", cfg.LevelPackPath, "err", err.Error())
		} else {
			pack = p
		}
	}

	r := gin.Default()
	registerRoutes(r, cfg, pack)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err.Error())
	}
}
