// Package gateway implements the session plane of a gateway node: the
// framed session engine, the process-local connection registry, the push
// endpoint peers invoke, and the WebSocket front door.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ashureev/tinyim/internal/protocol"
	"github.com/coder/websocket"
)

// Session states. Transitions: HANDSHAKING -> ACTIVE -> DRAINING -> CLOSED,
// with ACTIVE -> CLOSED on read error, idle timeout or close frame.
const (
	stateHandshaking int32 = iota
	stateActive
	stateDraining
	stateClosed
)

// ErrQueueFull is returned by Send when the writer queue is saturated.
var ErrQueueFull = errors.New("gateway: session write queue full")

var errSessionDraining = errors.New("gateway: session draining")

// wsConn is the slice of *websocket.Conn the session uses; tests substitute
// an in-memory pipe.
type wsConn interface {
	Read(ctx context.Context) (websocket.MessageType, []byte, error)
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Close(code websocket.StatusCode, reason string) error
}

// LocationStore maintains the (user, device) -> push-endpoint records the
// session engine exclusively owns for its own channel.
type LocationStore interface {
	SetLocation(ctx context.Context, userID int64, device, pushAddr string, ttl time.Duration) error
	RefreshLocation(ctx context.Context, userID int64, ttl time.Duration) error
	DeleteLocation(ctx context.Context, userID int64, device string) error
}

type outPacket struct {
	data       []byte
	closeAfter bool
}

// Session is one established, authenticated framed channel between a
// client device and this gateway node. The session exclusively owns its
// socket, decode buffer and write queue; the registry only holds a
// back-reference that the session drops on exit.
type Session struct {
	userID int64
	device string

	conn       wsConn
	registry   *Registry
	locations  LocationStore
	dispatcher *Dispatcher

	pushAddr    string
	idleTimeout time.Duration
	locationTTL time.Duration

	queue chan outPacket
	state atomic.Int32

	kickOnce  sync.Once
	closeOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// SessionConfig wires one session's collaborators.
type SessionConfig struct {
	UserID      int64
	Device      string
	Conn        wsConn
	Registry    *Registry
	Locations   LocationStore
	Dispatcher  *Dispatcher
	PushAddr    string
	IdleTimeout time.Duration
	LocationTTL time.Duration
	QueueSize   int
}

// NewSession builds a session in the HANDSHAKING state.
func NewSession(cfg SessionConfig) *Session {
	return &Session{
		userID:      cfg.UserID,
		device:      cfg.Device,
		conn:        cfg.Conn,
		registry:    cfg.Registry,
		locations:   cfg.Locations,
		dispatcher:  cfg.Dispatcher,
		pushAddr:    cfg.PushAddr,
		idleTimeout: cfg.IdleTimeout,
		locationTTL: cfg.LocationTTL,
		queue:       make(chan outPacket, cfg.QueueSize),
		done:        make(chan struct{}),
	}
}

// UserID returns the authenticated user of this session.
func (s *Session) UserID() int64 { return s.userID }

// Device returns the device name of this session.
func (s *Session) Device() string { return s.device }

// Run registers the session, writes its location record, then services the
// channel until it closes. It blocks for the session lifetime.
func (s *Session) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer cancel()

	s.registry.Join(s)
	if err := s.locations.SetLocation(ctx, s.userID, s.device, s.pushAddr, s.locationTTL); err != nil {
		slog.Error("Failed to write location record", "user_id", s.userID, "device", s.device, "error", err)
		s.closeNow(ctx)
		return
	}
	s.state.Store(stateActive)
	slog.Info("Session open", "user_id", s.userID, "device", s.device)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.writeLoop(ctx)
	}()

	s.readLoop(ctx)
	cancel()
	wg.Wait()
	s.closeNow(context.Background())
}

// Send enqueues one encoded frame for ordered delivery. It never touches
// the socket; the writer loop is the only goroutine that writes. Sends to
// a draining or closed session are dropped.
func (s *Session) Send(packet []byte) error {
	if s.state.Load() != stateActive {
		return errSessionDraining
	}
	select {
	case s.queue <- outPacket{data: packet}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Kick enqueues a final LOGOUT_RESP frame whose body begins with "Kicked",
// lets the writer drain everything queued before it, then closes.
// Idempotent.
func (s *Session) Kick(reason string) {
	s.kickOnce.Do(func() {
		if !s.state.CompareAndSwap(stateActive, stateDraining) {
			// Not active yet (or already closing): no frame owed.
			if s.state.Load() == stateHandshaking {
				s.closeNow(context.Background())
			}
			return
		}
		body := "Kicked"
		if reason != "" {
			body += ": " + reason
		}
		pkt := outPacket{data: protocol.Encode(protocol.CmdLogoutResp, []byte(body)), closeAfter: true}
		select {
		case s.queue <- pkt:
		case <-s.done:
		case <-time.After(time.Second):
			// Writer wedged; close without the courtesy frame.
			s.closeNow(context.Background())
		}
	})
}

// Close terminates immediately, dropping queued packets.
func (s *Session) Close() {
	s.closeNow(context.Background())
}

// closeNow performs terminal cleanup exactly once: socket, registry entry,
// location record.
func (s *Session) closeNow(ctx context.Context) {
	s.closeOnce.Do(func() {
		s.state.Store(stateClosed)
		close(s.done)
		if s.cancel != nil {
			s.cancel()
		}
		if err := s.conn.Close(websocket.StatusNormalClosure, "session closed"); err != nil {
			slog.Debug("Websocket close", "user_id", s.userID, "error", err)
		}
		s.registry.Leave(s)

		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := s.locations.DeleteLocation(cleanupCtx, s.userID, s.device); err != nil {
			slog.Warn("Failed to delete location record", "user_id", s.userID, "device", s.device, "error", err)
		}
		slog.Info("Session closed", "user_id", s.userID, "device", s.device)
	})
}

// writeLoop is the single writer: it pops the FIFO queue and writes frames
// in order, closing after the kick marker drains.
func (s *Session) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case pkt := <-s.queue:
			writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := s.conn.Write(writeCtx, websocket.MessageBinary, pkt.data)
			cancel()
			if err != nil {
				if ctx.Err() == nil {
					slog.Warn("Session write failed", "user_id", s.userID, "device", s.device, "error", err)
				}
				s.closeNow(ctx)
				return
			}
			if pkt.closeAfter {
				s.closeNow(ctx)
				return
			}
		}
	}
}

// readLoop decodes inbound frames in order. Each read carries the idle
// timeout: absent any inbound frame (heartbeats included) for that long,
// the session closes. Decode errors are protocol-fatal.
func (s *Session) readLoop(ctx context.Context) {
	var dec protocol.Decoder
	for {
		readCtx, cancel := context.WithTimeout(ctx, s.idleTimeout)
		_, data, err := s.conn.Read(readCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if websocket.CloseStatus(err) != -1 {
				slog.Debug("Session closed by client", "user_id", s.userID, "device", s.device)
			} else {
				slog.Info("Session read ended", "user_id", s.userID, "device", s.device, "error", err)
			}
			return
		}

		dec.Feed(data)
		for {
			frame, err := dec.Next()
			if err != nil {
				slog.Warn("Protocol fatal, dropping session", "user_id", s.userID, "device", s.device, "error", err)
				return
			}
			if frame == nil {
				break
			}
			s.handleFrame(ctx, frame)
			if s.state.Load() != stateActive {
				return
			}
		}
	}
}

// handleFrame answers heartbeats inline and routes everything else through
// the dispatch table. Responses ride the writer queue like any other
// outbound frame.
func (s *Session) handleFrame(ctx context.Context, frame *protocol.Frame) {
	if frame.Cmd == protocol.CmdHeartbeatReq {
		if err := s.Send(protocol.Encode(protocol.CmdHeartbeatResp, nil)); err != nil {
			slog.Debug("Heartbeat response dropped", "user_id", s.userID, "error", err)
		}
		return
	}

	resp, closeAfter, err := s.dispatcher.Dispatch(ctx, s.userID, frame)
	if err != nil {
		slog.Warn("Dispatch failed", "user_id", s.userID, "cmd", frame.Cmd, "error", err)
		return
	}
	if resp == nil {
		return
	}
	packet := protocol.Encode(resp.Cmd, resp.Body)
	if closeAfter {
		// Client-requested logout: answer, drain, close.
		if s.state.CompareAndSwap(stateActive, stateDraining) {
			select {
			case s.queue <- outPacket{data: packet, closeAfter: true}:
			case <-s.done:
			}
		}
		return
	}
	if err := s.Send(packet); err != nil {
		slog.Warn("Response dropped", "user_id", s.userID, "cmd", resp.Cmd, "error", err)
	}
}
