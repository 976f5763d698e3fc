package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/domain/job"
	"github.com/agily-hq/agily/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// How often job statuses are re-read from the database.
	jobPollPeriod = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type jobUpdate struct {
	ID       uint   `json:"id"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Finished bool   `json:"finished"`
}

// StreamJobs pushes bulk job status changes over a websocket. The client
// passes ?ids=1&ids=2; the stream closes once every watched job has
// finished.
//
// @Summary Stream bulk job status updates
// @Tags bulk
// @Security BearerAuth
// @Param ids query []int true "Job IDs to watch"
// @Router /ws/jobs [get]
func StreamJobs(svc *application.BulkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ids []uint
		for _, raw := range c.QueryArray("ids") {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				ids = append(ids, uint(id))
			}
		}
		if len(ids) == 0 {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "ids parameter is required"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
			return
		}

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		// Reader goroutine: consume control frames, cancel on close.
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		pingTicker := time.NewTicker(pingPeriod)
		pollTicker := time.NewTicker(jobPollPeriod)
		defer pingTicker.Stop()
		defer pollTicker.Stop()
		defer func() { _ = conn.Close() }()

		lastStatus := make(map[uint]string, len(ids))

		for {
			select {
			case <-ctx.Done():
				return
			case <-pingTicker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-pollTicker.C:
				remaining := len(ids)
				for _, id := range ids {
					j, err := svc.GetJob(id)
					if err != nil {
						remaining--
						continue
					}
					done := j.Status == string(job.StatusCompleted) || j.Status == string(job.StatusFailed)
					if done {
						remaining--
					}
					if lastStatus[id] == j.Status {
						continue
					}
					lastStatus[id] = j.Status

					_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
					if err := conn.WriteJSON(jobUpdate{
						ID:       j.ID,
						Status:   j.Status,
						Error:    j.Error,
						Finished: done,
					}); err != nil {
						return
					}
				}
				if remaining == 0 {
					_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
					_ = conn.WriteMessage(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, "all jobs finished"))
					return
				}
			}
		}
	}
}
