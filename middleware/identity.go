package middleware

import (
	"log"
	"time"

	"kabulearn/progress"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const guestSessionKey = "guestSessionId"

// SessionStore holds per-browser server-side sessions, used only to keep a
// guest's identity stable across requests.
var SessionStore *session.Store

// InitSessionStore creates the in-memory session store. Call once at boot.
func InitSessionStore() {
	SessionStore = session.New(session.Config{
		Expiration:     30 * 24 * time.Hour,
		CookieHTTPOnly: true,
	})
}

// ResolveIdentity returns exactly one identity for the request: the
// authenticated user when OptionalJWTMiddleware put one in Locals, else
// the guest session id, minting and saving a new one on first contact.
// Session-store failures degrade to a throwaway guest id rather than an
// error; progress for that request is simply not durable.
func ResolveIdentity(c *fiber.Ctx) progress.Identity {
	if userID, ok := c.Locals("userId").(uint); ok && userID != 0 {
		return progress.ForUser(userID)
	}

	sess, err := SessionStore.Get(c)
	if err != nil {
		log.Printf("Identity resolution degraded, using one-off guest id: %v", err)
		return progress.ForSession(uuid.New().String())
	}

	sessionID, _ := sess.Get(guestSessionKey).(string)
	if sessionID == "" {
		sessionID = uuid.New().String()
		sess.Set(guestSessionKey, sessionID)
		if err := sess.Save(); err != nil {
			log.Printf("Failed to save guest session: %v", err)
		}
	}

	return progress.ForSession(sessionID)
}
