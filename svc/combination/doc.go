// Package combination serves towing checks for a car and trailer pair.
//
// Service.Check validates a CheckRequest, resolves the license class from a
// license.Registry, runs towing.Evaluate and localizes the findings with an
// i18n.Translator. NewRouter exposes the service over HTTP:
//
//	POST /check          JSON or form body, returns a Report
//	GET  /licenses       known license classes
//	GET  /schema/{name}  JSON Schema of the request or verdict
//	GET  /healthz        liveness probe
package combination
