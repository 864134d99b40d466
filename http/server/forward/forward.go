// Package forward provides helper functions for forwarding HTTP requests to
// use cases.
//
// The adapters decode a request's body, query and path parameters into the
// use case's input struct, validate it, execute the use case and JSON-encode
// the response. Handlers stay one-liners:
//
//	r.Get("/v1/files/list", forward.ToUseCase(listFiles.Execute))
package forward

const (
	codeInvalidContentType = "INVALID_CONTENT_TYPE"
	codeInvalidJSONBody    = "INVALID_JSON_BODY"
	codeInvalidQueryParams = "INVALID_QUERY_PARAMS"
	codeInvalidPathParams  = "INVALID_PATH_PARAMS"
)
