package signal

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/domain"
	"github.com/privacall/privacall/internal/protocol"
)

func (ctl *Controller) writePump(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(ctl.Cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Warn().Err(err).Str("module", "signal").Msg("writePump ping error")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, cancel context.CancelFunc, eid domain.EndpointID, c *wsConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("endpoint", string(eid)).Msg("readPump closing")
		cancel()
		ctl.Orch.OnDisconnect(eid)
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("endpoint", string(eid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Info().Err(err).Str("module", "signal").Str("endpoint", string(eid)).Msg("readPump read error")
				return
			}
			ctl.handleFrame(eid, c, data)
		}
	}
}

func (ctl *Controller) handleFrame(eid domain.EndpointID, c *wsConn, data []byte) {
	env, err := protocol.Decode(data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		return
	}

	switch env.Event {
	case protocol.EvCreateRoom:
		ctl.handleCreateRoom(eid, env.Data)
	case protocol.EvRequestJoin:
		ctl.handleRequestJoin(eid, env.Data)
	case protocol.EvApproveJoin:
		ctl.handleApproveJoin(eid, env.Data)
	case protocol.EvRejectJoin:
		ctl.handleRejectJoin(eid, env.Data)
	case protocol.EvVoteEndCall:
		ctl.handleVoteEndCall(eid, env.Data)
	case protocol.EvRequestModeChange:
		ctl.handleRequestModeChange(eid, env.Data)
	case protocol.EvVoteModeChange:
		ctl.handleVoteModeChange(eid, env.Data)
	case protocol.EvSendMessage:
		ctl.handleSendMessage(eid, env.Data)
	case protocol.EvWebRTCOffer, protocol.EvWebRTCAnswer, protocol.EvWebRTCICECandidate:
		ctl.handleSignalRelay(eid, env.Event, env.Data)
	case protocol.EvPing:
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("event", env.Event).Msg("unknown event")
	}
}
