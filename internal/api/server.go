// Package api exposes the controller over HTTP: session lifecycle and
// progress via JSON endpoints, live frame streaming via WebSocket.
package api

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tryangle/coach-controller/internal/history"
	"github.com/tryangle/coach-controller/internal/logging"
	"github.com/tryangle/coach-controller/internal/pipeline"
	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region server

// Server routes HTTP and WebSocket traffic to the pipeline. The history
// store is optional; without it sessions are simply not persisted.
type Server struct {
	pipe     *pipeline.Pipeline
	store    *history.Store
	upgrader websocket.Upgrader

	// One drain goroutine owns the pipeline's result channel; connected
	// clients subscribe to a per-connection fan-out so a dead socket can
	// never consume another client's feedback.
	mu   sync.Mutex
	subs map[chan resultMessage]struct{}
}

// NewServer creates an API server over the given pipeline and starts
// the result drain. store may be nil.
func NewServer(pipe *pipeline.Pipeline, store *history.Store) *Server {
	s := &Server{
		pipe:  pipe,
		store: store,
		upgrader: websocket.Upgrader{
			// The controller fronts a device-local capture app; same-host
			// traffic only.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		subs: make(map[chan resultMessage]struct{}),
	}
	go s.drainResults()
	return s
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.GET("/healthz", s.handleHealthz)
	engine.POST("/api/session", s.handleStartSession)
	engine.DELETE("/api/session", s.handleEndSession)
	engine.GET("/api/session/progress", s.handleProgress)
	engine.GET("/api/session/frames", s.handleFrameStream)
	engine.GET("/api/stats", s.handleStats)
	engine.GET("/api/history", s.handleHistory)
	engine.GET("/api/history/:id", s.handleSessionDetail)
	return engine
}

// #endregion server

// #region health

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// #endregion health

// #region session-handlers

type startSessionRequest struct {
	Reference snapshot.Bundle `json:"reference"`
}

// handleStartSession creates a session from a reference bundle.
func (s *Server) handleStartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	sessionID, err := s.pipe.StartSession(req.Reference)
	if err != nil {
		log.Printf("[API] start session failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "start session failed"})
		return
	}

	if s.store != nil {
		ref, _ := s.pipe.Reference()
		if err := s.store.CreateSession(sessionID, time.Now().UTC(), ref); err != nil {
			log.Printf("[API] persist session %s failed: %v", sessionID, err)
		}
		s.audit(logging.AuditEntry{SessionID: sessionID, Event: logging.EventSessionStarted})
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
}

// handleEndSession finishes the active session and returns its final
// progress.
func (s *Server) handleEndSession(c *gin.Context) {
	prog, err := s.pipe.EndSession()
	if err != nil {
		writePipelineError(c, err)
		return
	}

	if s.store != nil {
		if err := s.store.EndSession(prog.SessionID, time.Now().UTC(), prog.Score); err != nil {
			log.Printf("[API] persist session end %s failed: %v", prog.SessionID, err)
		}
		s.audit(logging.AuditEntry{SessionID: prog.SessionID, Event: logging.EventSessionEnded})
	}

	c.JSON(http.StatusOK, prog)
}

// handleProgress returns the active session's progress.
func (s *Server) handleProgress(c *gin.Context) {
	prog, err := s.pipe.Progress()
	if err != nil {
		writePipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, prog)
}

// handleStats returns pipeline throughput counters.
func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.pipe.Stats())
}

// handleHistory lists recent persisted sessions.
func (s *Server) handleHistory(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "history not enabled"})
		return
	}
	sessions, err := s.store.ListSessions(50)
	if err != nil {
		log.Printf("[API] list sessions failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list sessions failed"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// handleSessionDetail returns one persisted session with its frames and
// audit trail.
func (s *Server) handleSessionDetail(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "history not enabled"})
		return
	}
	sessionID := c.Param("id")
	rec, err := s.store.GetSession(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	frames, err := s.store.ListFrames(sessionID, 1000)
	if err != nil {
		log.Printf("[API] list frames for %s failed: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list frames failed"})
		return
	}
	trail, err := s.store.AuditTrail(sessionID)
	if err != nil {
		log.Printf("[API] audit trail for %s failed: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "audit trail failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": rec, "frames": frames, "audit": trail})
}

// audit records an entry in the session audit trail; failures are
// logged, never surfaced to the client.
func (s *Server) audit(entry logging.AuditEntry) {
	if err := s.store.Audit(entry); err != nil {
		log.Printf("[API] audit %s failed: %v", entry.Event, err)
	}
}

func writePipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pipeline.ErrNoReference):
		c.JSON(http.StatusConflict, gin.H{"error": "no active session"})
	case errors.Is(err, pipeline.ErrSessionEnded):
		c.JSON(http.StatusConflict, gin.H{"error": "session already ended"})
	case errors.Is(err, pipeline.ErrStaleFrame):
		c.JSON(http.StatusBadRequest, gin.H{"error": "stale frame sequence"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// #endregion session-handlers

// #region frame-stream

type frameMessage struct {
	Seq        uint64          `json:"seq"`
	CapturedAt time.Time       `json:"captured_at"`
	Bundle     snapshot.Bundle `json:"bundle"`
}

type resultMessage struct {
	Type      string         `json:"type"` // "result" | "dropped" | "error"
	SessionID string         `json:"session_id,omitempty"`
	Seq       uint64         `json:"seq,omitempty"`
	Actions   []rules.Action `json:"actions,omitempty"`
	Score     float64        `json:"score,omitempty"`
	ElapsedMS float64        `json:"elapsed_ms,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// drainResults is the sole consumer of the pipeline's result channel.
// It persists each result, records critical retakes in the audit trail
// and broadcasts to every subscribed connection. Runs until the
// pipeline closes its channel.
func (s *Server) drainResults() {
	for res := range s.pipe.Results() {
		if s.store != nil {
			if err := s.store.RecordFrame(res.SessionID, res.Seq, res.Score, res.Elapsed, res.Actions); err != nil {
				log.Printf("[API] persist frame %d failed: %v", res.Seq, err)
			}
			for _, a := range res.Actions {
				if a.Category == rules.CategoryCritical {
					s.audit(logging.AuditEntry{
						SessionID: res.SessionID,
						Seq:       res.Seq,
						Event:     logging.EventRetakeIssued,
						Reason:    a.ReasonCode,
					})
				}
			}
		}
		s.broadcast(resultMessage{
			Type:      "result",
			SessionID: res.SessionID,
			Seq:       res.Seq,
			Actions:   res.Actions,
			Score:     res.Score,
			ElapsedMS: float64(res.Elapsed) / float64(time.Millisecond),
		})
	}
}

// broadcast fans a message out to every subscriber. Sends are
// non-blocking; a subscriber whose buffer is full misses the message
// rather than stalling the drain.
func (s *Server) broadcast(msg resultMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (s *Server) subscribe() chan resultMessage {
	ch := make(chan resultMessage, 16)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

// unsubscribe removes and closes the channel. Close happens under the
// same lock as broadcast sends, so a send on a closed channel cannot
// occur.
func (s *Server) unsubscribe(ch chan resultMessage) {
	s.mu.Lock()
	delete(s.subs, ch)
	close(ch)
	s.mu.Unlock()
}

// handleFrameStream upgrades to WebSocket. The client pushes frame
// messages; evaluated results stream back as they are produced. A
// frame thinned by the scheduler gets a "dropped" notice instead of a
// result.
func (s *Server) handleFrameStream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[API] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// All socket writes go through one goroutine; gorilla/websocket
	// forbids concurrent writers.
	out := s.subscribe()
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range out {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("[API] websocket write failed: %v", err)
				return
			}
		}
	}()

	// Reader: submit incoming frames, routing rejections back through
	// the writer.
	for {
		var msg frameMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[API] websocket read failed: %v", err)
			}
			break
		}
		capturedAt := msg.CapturedAt
		if capturedAt.IsZero() {
			capturedAt = time.Now().UTC()
		}
		admitted, err := s.pipe.SubmitFrame(msg.Seq, capturedAt, msg.Bundle)
		switch {
		case err != nil:
			trySend(out, resultMessage{Type: "error", Seq: msg.Seq, Error: err.Error()})
		case !admitted:
			trySend(out, resultMessage{Type: "dropped", Seq: msg.Seq})
		}
	}

	s.unsubscribe(out)
	<-writerDone
}

func trySend(ch chan resultMessage, msg resultMessage) {
	select {
	case ch <- msg:
	default:
	}
}

// #endregion frame-stream
