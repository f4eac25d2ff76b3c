// Package http provides the HTTP surface of the todod server: a single
// method-discriminated route for the todo CRUD operations, the CORS
// layer, and the credential-check middleware that runs before every
// non-preflight request.
package http
