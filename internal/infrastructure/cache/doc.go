// Package cache provides users.UserCache implementations: an in-process map
// with TTL expiry and a memcached backed cache shared between replicas.
package cache
