// Package clientip resolves the address of the client behind an HTTP request.
//
// Forwarding headers are only meaningful behind a proxy that sets them, so
// the headers to trust are configured explicitly:
//
//	r.Use(clientip.Middleware("X-Forwarded-For", "X-Real-IP"))
//
// Without headers the connection's remote address is used. The resolved IP is
// stored in the request context (FromContext) and can be added to every log
// record with LoggerExtractor.
package clientip
