package httputil

// ContextKey is the type of keys set on the gin context by middlewares.
type ContextKey string

// ContextURL holds the external base URL of the API as a string.
const ContextURL ContextKey = "requestURL"
