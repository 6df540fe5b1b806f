// Package mvc holds the leaf value types and capability interfaces shared by
// the core actors (Model, View, Controller) and the pattern helpers:
//
//   - notification.go: Notification, the immutable named event value.
//   - observer.go: Observer, a (callback, context) pair.
//   - interfaces.go: Command, Notifier, Mediator, Proxy and the core actors.
//   - command.go: CommandConstructor, CommandFactory and Instantiate.
//   - errors.go: error types and helpers (IsNilArgument, IsInstantiation, IsNotWired).
//
// Everything here is single-threaded by contract; callers confine framework
// calls to one goroutine.
package mvc
