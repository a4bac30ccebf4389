package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/privacall/privacall/internal/protocol"
)

func (ctl *Controller) handlePing(c *wsConn) {
	frame, err := protocol.Encode(protocol.EvPong, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("encode pong")
		return
	}
	_ = c.TrySend(frame)
}
