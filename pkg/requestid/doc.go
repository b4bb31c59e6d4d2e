// Package requestid tags every HTTP request with an identifier that is echoed
// in the X-Request-ID response header, stored in the request context and
// picked up by the logger.
//
// A client-supplied X-Request-ID is kept when it is at most 128 characters of
// letters, digits, '-' and '_'. Otherwise a time-ordered UUIDv7 is generated.
package requestid
