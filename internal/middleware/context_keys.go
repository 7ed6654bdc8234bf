package middleware

import "github.com/gin-gonic/gin"

// clientNamespaceKey is the key used to store the caller's preference namespace in the Gin context.
const clientNamespaceKey = contextKey("clientNamespace")

// GetClientNamespaceFromContext retrieves the preference namespace resolved by ClientIdentity.
// It returns the namespace and a boolean indicating if it was found.
func GetClientNamespaceFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(clientNamespaceKey))
	if !exists {
		// check in the request context as well
		if ns, ok := c.Request.Context().Value(clientNamespaceKey).(string); ok && ns != "" {
			return ns, true
		}
		return "", false
	}

	ns, ok := val.(string)
	if !ok || ns == "" {
		return "", false
	}
	return ns, true
}
