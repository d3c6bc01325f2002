package ratelimit

import "strings"

// identityFields is the order in which request fields identify a caller.
var identityFields = []string{"email", "phone", "login", "username"}

// IdentityKey derives the identity-scope key: the authenticated user if any,
// else the first non-empty identifying field, else the client IP.
func IdentityKey(userID string, fields map[string]string, ip string) string {
	if userID != "" {
		return "user:" + userID
	}

	for _, name := range identityFields {
		v := strings.ToLower(strings.TrimSpace(fields[name]))
		if v != "" {
			return name + ":" + v
		}
	}

	return ip
}
