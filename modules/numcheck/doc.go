// Package numcheck exposes number format validation over HTTP.
//
// Router mounts three JSON endpoints:
//
//	GET  /formats               list catalog formats
//	GET  /validate/{name}       check ?value= against a catalog format
//	POST /validate              check a batch of values against a notation or a catalog format
//
// Responses use the envelope {"data": ..., "error": {"code", "message", "details"}}.
// A rejected value is a successful response with "valid": false; errors are
// reserved for malformed requests and unknown formats.
package numcheck
