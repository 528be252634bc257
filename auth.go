package main

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a pre-computed bcrypt hash used when no passcode is configured.
// Running bcrypt against it (instead of returning early) keeps response time
// constant, so a probe can't tell a fresh install from a wrong passcode.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// login verifies the passcode and returns the session token.
// POST /api/login (public; no auth required).
func (h *Handler) login(c *gin.Context) {
	var body struct {
		Passcode string `json:"passcode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	auth := h.store.Auth()
	hashToCheck := string(dummyHash)
	configured := auth.PasscodeHash != ""
	if configured {
		hashToCheck = auth.PasscodeHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hashToCheck), []byte(body.Passcode))

	if !configured || compareErr != nil {
		apiError(c, http.StatusUnauthorized, "invalid passcode")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": auth.Token})
}

// authMiddleware validates the Bearer token against the stored session token.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		expected := h.store.Auth().Token
		if expected == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Next()
	}
}
