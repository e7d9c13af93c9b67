// Package app implements the user registration, lookup and authentication use
// cases on top of the ports declared by the users domain package.
package app
