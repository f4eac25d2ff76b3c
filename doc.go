// Package todod contains the core domain for the todod todo list server:
// the Item entity, the ItemRepo store contract, and the Service that sits
// between the HTTP layer and a store backend.
package todod
