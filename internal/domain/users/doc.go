// Package users holds the user domain: the User and Role entities, the
// registration rules every account must satisfy, the typed domain errors,
// and the ports (services, repositories, hashing, tokens, caching) the
// application layer is built against.
package users
