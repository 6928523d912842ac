package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
)

// RegisterRoutes mounts every endpoint under the API prefix.
func RegisterRoutes(router *gin.Engine, h *Handler, auth *AuthHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteTuning, h.GetTuning)
		apiRoutes.POST(constants.RouteAuthGoogleCallBack, auth.GoogleOAuthCallback)
		apiRoutes.POST(constants.RouteAuthLogout, auth.Logout)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(AuthRequired())

		protected.GET(constants.RouteProfile, h.GetProfile)
		protected.POST(constants.RouteProfileLoot, h.RollLoot)
		protected.GET(constants.RouteFightSocket, h.FightSocket)
	}
}
