package ws

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"

	"github.com/Yuter777/Which-flag-game/internal/config"
	"github.com/Yuter777/Which-flag-game/internal/countries"
	"github.com/Yuter777/Which-flag-game/internal/game"
)

type ConnCtx struct {
	SessionID string
}

// Server bridges socket connections to their session engines. Every
// connection owns one session: it is created on connect and dropped on
// disconnect.
type Server struct {
	games   *game.Manager
	config  config.Config
	baseCtx context.Context
}

// New creates the socket server. baseCtx bounds the rounds spawned for
// connections; cancelling it makes in-flight rounds finish without pacing.
func New(baseCtx context.Context, games *game.Manager, cfg config.Config) *Server {
	return &Server{games: games, config: cfg, baseCtx: baseCtx}
}

// connPresenter renders a session's rounds onto its socket connection.
type connPresenter struct {
	srv       *Server
	conn      socketio.Conn
	sessionID string
}

func (p *connPresenter) PhaseChanged(state game.RoundState) {
	p.conn.Emit("round:phase", statePayload(p.sessionID, state))
}

func (p *connPresenter) ShuffleFrame(imageURL string) {
	p.conn.Emit("round:shuffle", map[string]any{"imageUrl": imageURL})
}

func (p *connPresenter) FlagRevealed(entry countries.Entry) {
	p.conn.Emit("round:reveal", map[string]any{"imageUrl": entry.ImageURL})
}

func (p *connPresenter) CountdownTick(remaining int) {
	p.conn.Emit("round:countdown", map[string]any{"remaining": remaining})
}

func (p *connPresenter) NameRevealed(entry countries.Entry, rec game.RoundRecord) {
	p.conn.Emit("round:name", map[string]any{
		"round":         rec.Index,
		"name":          entry.Name,
		"localizedName": entry.LocalizedName,
		"imageUrl":      entry.ImageURL,
	})
	if p.srv.config.ExportEnabled {
		if err := game.ExportRound(p.sessionID, rec, p.srv.config.ExportFile); err != nil {
			log.Error().Err(err).Str("session", p.sessionID).Msg("failed to export round")
		}
	}
}

func (p *connPresenter) LoadFailed(err error) {
	p.conn.Emit("game:error", map[string]any{
		"code":    "flags_unavailable",
		"message": "Bayroqlarni yuklab boʻlmadi. Birozdan soʻng qayta urinib koʻring.",
		"detail":  err.Error(),
	})
}

// Mount attaches the Socket.IO server with handlers to the given Gin engine.
func (srv *Server) Mount(r *gin.Engine) *socketio.Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(s socketio.Conn) error {
		pres := &connPresenter{srv: srv, conn: s}
		eng := srv.games.Create(pres)
		pres.sessionID = eng.ID
		s.SetContext(&ConnCtx{SessionID: eng.ID})
		log.Info().Str("sid", s.ID()).Str("session", eng.ID).Msg("socket connected")
		s.Emit("game:state", statePayload(eng.ID, eng.Snapshot()))
		return nil
	})

	// round:start is the single player input. Both a tap and a keypress on
	// the client end up here; whichever lands second while a round is in
	// flight is acknowledged as not started and nothing else happens.
	io.OnEvent("/", "round:start", func(s socketio.Conn) map[string]any {
		eng, errPayload := srv.session(s)
		if errPayload != nil {
			return errPayload
		}
		started := eng.Start(srv.baseCtx)
		snap := eng.Snapshot()
		if started {
			log.Info().Str("session", eng.ID).Int("round", snap.Round).Msg("round:start")
		}
		return map[string]any{"started": started, "phase": string(snap.Phase)}
	})

	// game:state lets a client re-sync after a hiccup.
	io.OnEvent("/", "game:state", func(s socketio.Conn) map[string]any {
		eng, errPayload := srv.session(s)
		if errPayload != nil {
			return errPayload
		}
		return statePayload(eng.ID, eng.Snapshot())
	})

	// game:history returns the finished rounds of this session.
	io.OnEvent("/", "game:history", func(s socketio.Conn) map[string]any {
		eng, errPayload := srv.session(s)
		if errPayload != nil {
			return errPayload
		}
		return map[string]any{"sessionId": eng.ID, "rounds": eng.History()}
	})

	io.OnError("/", func(s socketio.Conn, e error) {
		log.Error().Str("sid", s.ID()).Err(e).Msg("socket error")
	})
	io.OnDisconnect("/", func(s socketio.Conn, reason string) {
		if ctx, ok := s.Context().(*ConnCtx); ok && ctx.SessionID != "" {
			srv.games.Remove(ctx.SessionID)
		}
		log.Info().Str("sid", s.ID()).Str("reason", reason).Msg("socket disconnected")
	})

	go io.Serve()

	// Mount to router
	r.GET("/socket.io/*any", gin.WrapH(io))
	r.POST("/socket.io/*any", gin.WrapH(io))

	// Basic CORS preflight for Socket.IO POST
	r.OPTIONS("/socket.io/*any", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
	})

	return io
}

// session resolves the connection's engine, emitting an error payload when
// the connection has no live session.
func (srv *Server) session(s socketio.Conn) (*game.Engine, map[string]any) {
	ctx, ok := s.Context().(*ConnCtx)
	if !ok || ctx.SessionID == "" {
		return nil, srv.err(s, "no_session", "Connection has no session")
	}
	eng, err := srv.games.Get(ctx.SessionID)
	if err != nil {
		return nil, srv.err(s, "session_not_found", "Session not found")
	}
	return eng, nil
}

func (srv *Server) err(s socketio.Conn, code, message string) map[string]any {
	s.Emit("game:error", map[string]any{"code": code, "message": message})
	return map[string]any{"error": message}
}

func statePayload(sessionID string, state game.RoundState) map[string]any {
	payload := map[string]any{
		"sessionId":      sessionID,
		"phase":          string(state.Phase),
		"round":          state.Round,
		"remainingTicks": state.RemainingTicks,
	}
	if state.Selected != nil {
		payload["selected"] = state.Selected
	}
	return payload
}
