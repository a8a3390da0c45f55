// Package command defines the inbound command protocol and the dispatcher
// that routes decoded envelopes to typed handlers.
//
// An Envelope carries a command type, an opaque correlation id, a
// type-specific JSON payload, and an optional replyTo queue. Each command
// kind has a dedicated payload struct (CreateOrder, GetOrder, UpdateOrder,
// DeleteOrder), so payload shape mismatches surface as decode errors inside
// the matched handler instead of missing-field bugs at runtime.
//
// The Dispatcher converts every handler result into an Outcome: handler
// errors and panics become Outcome{Success: false} with the error text,
// never an error propagated to the polling loop. Unknown command types are
// governed by an explicit policy: PolicyDrop (default) logs and consumes
// the message without a reply, PolicyReply answers the caller with an
// unsupported-type failure.
//
// Basic usage:
//
//	dispatcher := command.NewDispatcher(
//		command.WithLogger(logger),
//		command.WithUnknownPolicy(command.PolicyReply),
//	)
//
//	handlers, err := command.OrderHandlers(store)
//	if err != nil {
//		return err
//	}
//	if err := dispatcher.RegisterAll(handlers...); err != nil {
//		return err
//	}
//
//	outcome, err := dispatcher.Dispatch(ctx, envelope)
//	if errors.Is(err, command.ErrUnknownCommand) {
//		// consume without reply
//	}
package command
