package constants

// Centralized constants for headers, env keys and auth integration.
const (
	// Environment variable keys
	EnvConfigPath          = "COUNTERPUNCH_CONFIG"
	EnvDBPath              = "COUNTERPUNCH_DB"
	EnvSessionSecret       = "SESSION_SECRET"
	EnvGoogleClientID      = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret  = "GOOGLE_CLIENT_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"

	DefaultConfigPath = "./counterpunch_config.json"
	DefaultDBPath     = "./data/counterpunch.db"

	// Session / Cookie names
	CookieSessionName = "cp_session"

	// Context keys set by the auth middleware
	CtxUserEmail = "userEmail"
	CtxUserName  = "userName"

	// Google OAuth constants
	GoogleOAuthRedirect = "postmessage"
	GoogleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var (
	// Scopes for Google userinfo
	GoogleUserInfoScopes = []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"}
)

// Routes used by the backend router
const (
	RouteAPIPrefix          = "/api"
	RouteVersion            = "/version"
	RouteTuning             = "/tuning"
	RouteAuthGoogleCallBack = "/auth/google/oauth2callback"
	RouteAuthLogout         = "/auth/logout"
	RouteProfile            = "/profile"
	RouteProfileLoot        = "/profile/loot"
	RouteFightSocket        = "/fight/ws"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
	JSONKeyReason  = "reason"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrMissingGoogleEnv    = "Missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET in environment"
	ErrFailedLoadProfile   = "Failed to load profile"
	ErrFailedSaveProfile   = "Failed to save profile"
	ErrInsufficientFunds   = "Not enough cash!"
	ErrFailedUpgradeSocket = "Failed to open fight connection"

	ErrFailedExchangeToken    = "Failed to exchange token"
	ErrFailedGetUserInfo      = "Failed to get user info"
	ErrFailedReadUserData     = "Failed to read user data: %s"
	ErrNoEmailInGoogleProfile = "No email in Google profile"
	ErrFailedCreateSession    = "Failed to create session"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"
)

// Reasons carried by LootRejected
const (
	ReasonInsufficientFunds = "insufficient_funds"
)

// Logging field names
const (
	LogFieldOwner     = "owner"
	LogFieldAddr      = "addr"
	LogFieldConn      = "conn"
	LogFieldFight     = "fight"
	LogFieldTier      = "tier"
	LogFieldCash      = "cash"
	LogFieldTechnique = "technique"
	LogFieldKey       = "key"
	LogFieldPath      = "path"
)
