// Package security provides the password hashing and access token adapters
// used by the authentication use cases.
package security
