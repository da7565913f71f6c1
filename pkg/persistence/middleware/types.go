package middleware

import "github.com/AlexGronaCW/tickwork/pkg/ports"

// Middleware allows wrapping a TokenStore to add behavior.
type Middleware func(ports.TokenStore) ports.TokenStore
