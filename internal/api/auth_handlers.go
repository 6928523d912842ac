package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/keys"
	"github.com/kawertyff-source/Simungboxing-128/internal/logging"
	"github.com/kawertyff-source/Simungboxing-128/internal/service"
)

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	profiles *service.Profiles
}

func NewAuthHandler(profiles *service.Profiles) *AuthHandler {
	return &AuthHandler{profiles: profiles}
}

type GoogleOAuthCallbackRequest struct {
	Code string `json:"code"`
}

func (h *AuthHandler) GoogleOAuthCallback(c *gin.Context) {
	var req GoogleOAuthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	googleClientID := os.Getenv(constants.EnvGoogleClientID)
	googleClientSecret := os.Getenv(constants.EnvGoogleClientSecret)
	if googleClientID == "" || googleClientSecret == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingGoogleEnv})
		return
	}

	conf := &oauth2.Config{
		ClientID:     googleClientID,
		ClientSecret: googleClientSecret,
		RedirectURL:  constants.GoogleOAuthRedirect,
		Scopes:       constants.GoogleUserInfoScopes,
		Endpoint:     google.Endpoint,
	}

	ctx := c.Request.Context()
	token, err := conf.Exchange(ctx, req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrFailedExchangeToken, constants.JSONKeyDetails: err.Error()})
		return
	}

	resp, err := conf.Client(ctx, token).Get(constants.GoogleUserInfoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGetUserInfo, constants.JSONKeyDetails: err.Error()})
		return
	}
	defer resp.Body.Close()

	userData, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrFailedReadUserData, err.Error())})
		return
	}

	var payload struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	_ = json.Unmarshal(userData, &payload)
	email := keys.Owner(payload.Email)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrNoEmailInGoogleProfile})
		return
	}

	sess, err := createSessionToken(email, payload.Name, sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateSession, constants.JSONKeyDetails: err.Error()})
		return
	}
	setSessionCookie(c, sess, sessionTTL)

	out := gin.H{"email": email, "name": payload.Name}
	if payload.Picture != "" {
		out["picture"] = payload.Picture
	}
	// Warm the profile cache so the first fight does not wait on storage.
	if prof, err := h.profiles.Get(ctx, email); err == nil {
		out["stats"] = prof.Stats()
	} else {
		logging.Warn("profile not loaded at login", logging.Fields{constants.LogFieldOwner: email, "error": err.Error()})
	}
	c.JSON(http.StatusOK, out)
}

// Logout drops the session cookie. It succeeds without a session too.
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}
