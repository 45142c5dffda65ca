// Package http implements the REST transport of the organization API.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, bearer token checks and error to status mapping happen in
// this package before requests are delegated to the service layer. Error
// answers carry a JSON body of the form {"message": "..."}.
package http
