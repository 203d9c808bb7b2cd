// Package session houses the concrete implementation of core.SessionStore.
// The interface itself (and the turn types) live in the core package to
// centralize domain contracts; keeping only the implementation here prevents
// higher level packages (engine, façade) from depending on concrete storage.
package session
