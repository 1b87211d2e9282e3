// Package internal contains the dispatch core of the anvil framework.
//
// It is internal and should not be imported directly; import
// "github.com/anvilworks/anvil" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: owns the controller and listener registries, config, event log,
//     and logger; immutable after New apart from listener re-discovery
//   - Controller: external collaborator exposing Routes() and Actions()
//   - ActionFunc: a single invocable capability on a controller
//   - Context: per-dispatch state handed to actions (args, view, output)
//   - Route / RouteTable / CompiledRoute: declarative path templates with
//     named :parameter segments, matched positionally in declaration order
//   - Listener / ListenerRegistry: named lifecycle event handlers,
//     triggered synchronously in sorted identifier order
//
// # Dispatch Pass
//
// One request flows through a single synchronous pass:
//
//	ParsePath → make controller → resolve action → actionBefore →
//	invoke → actionAfter
//
// Unresolvable actions fall back to the built-in not-found controller;
// unknown controller names and listener errors are fatal for the request;
// panics are escalated to *PanicError.
package internal
