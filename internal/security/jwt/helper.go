package jwt

// getPayload extracts payload from token claims
func getPayload(claims map[string]any) (map[string]any, bool) {
	if payload, ok := claims["payload"].(map[string]any); ok {
		return payload, true
	}
	return nil, false
}

// GetPayloadString safely extracts a string value from the token payload.
func GetPayloadString(claims map[string]any, key string) string {
	if payload, ok := getPayload(claims); ok {
		if val, ok := payload[key].(string); ok {
			return val
		}
	}
	return ""
}

// GetSubject extracts subject (sub) from token claims.
func GetSubject(claims map[string]any) string {
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

// IsAccessToken reports whether the claims belong to an access token.
func IsAccessToken(claims map[string]any) bool {
	return GetSubject(claims) == subjectAccess
}

// IsRefreshToken reports whether the claims belong to a refresh token.
func IsRefreshToken(claims map[string]any) bool {
	return GetSubject(claims) == subjectRefresh
}
