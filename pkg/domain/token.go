package domain

// TokenType identifies one of the session tokens the collaborator manages.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
	TokenID      TokenType = "id"
	TokenSession TokenType = "session"
)

// Feature identifies a deployable feature section in the client config.
type Feature string

const (
	FeatureIdentity     Feature = "identity"
	FeatureAchievements Feature = "achievements"
	FeatureGameState    Feature = "gamestate"
	FeatureUserData     Feature = "userdata"
)
