package http

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pion/webrtc/v4"

	"github.com/privacall/privacall/internal/config"
)

// IceServersHandler hands clients the STUN/TURN set to dial with.
// TURN credentials are time-limited HMAC-SHA1 over the shared secret
// (coturn's static-auth-secret scheme).
func IceServersHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		servers := []webrtc.ICEServer{
			{URLs: cfg.StunURLs},
		}

		if cfg.TurnURL != "" && cfg.TurnSecret != "" {
			expiration := time.Now().Add(cfg.TurnTTL).Unix()
			username := fmt.Sprintf("%d", expiration)

			mac := hmac.New(sha1.New, []byte(cfg.TurnSecret))
			mac.Write([]byte(username))
			password := base64.StdEncoding.EncodeToString(mac.Sum(nil))

			servers = append(servers, webrtc.ICEServer{
				URLs:       []string{cfg.TurnURL},
				Username:   username,
				Credential: password,
			})
		}

		c.JSON(http.StatusOK, gin.H{"iceServers": servers})
	}
}
