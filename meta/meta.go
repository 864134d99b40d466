// Package meta provides functionality for managing request metadata through
// context.
package meta

import "context"

// ContextKey is a type for keys used in context values for metadata.
type ContextKey string

const (
	// TraceID represents a unique identifier for tracing requests.
	TraceID ContextKey = "trace_id"

	// RequestUserID identifies the user making the request.
	RequestUserID ContextKey = "request_user_id"

	// IPAddress contains the client's IP address.
	IPAddress ContextKey = "ip_address"

	// UserAgent contains the user agent string from the request.
	UserAgent ContextKey = "user_agent"

	// RemoteAddr contains the network address that sent the request.
	RemoteAddr ContextKey = "remote_addr"

	// Referer contains the address of the previous web page from which a
	// link was followed.
	Referer ContextKey = "referer"

	// ServiceName identifies the name of the current running service.
	ServiceName ContextKey = "service_name"

	// ServiceVersion indicates the version of the service.
	ServiceVersion ContextKey = "service_version"

	// AcceptLanguage indicates the locale that the client prefers.
	AcceptLanguage ContextKey = "accept-language"
)

// allKeys lists every key ExtractMetaFromContext looks up.
//
//nolint:gochecknoglobals // static lookup table
var allKeys = []ContextKey{
	TraceID,
	RequestUserID,
	IPAddress,
	UserAgent,
	RemoteAddr,
	Referer,
	ServiceName,
	ServiceVersion,
	AcceptLanguage,
}

// InjectMetaToContext adds metadata from the provided map to the context.
// It only adds values that are not empty strings and returns a new context
// with the added values.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext extracts all known metadata from the provided
// context. Only non-empty string values are included in the returned map.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range allKeys {
		if v := Find(ctx, k); v != "" {
			data[k] = v
		}
	}
	return data
}

// Find returns the string value stored in the context for the given key, or
// an empty string when the key is absent.
func Find(ctx context.Context, key ContextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}
