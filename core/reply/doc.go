// Package reply builds and publishes reply messages for processed commands.
//
// A Reply echoes the inbound correlation id byte-identical and duplicates
// correlationId and eventType as queue message attributes, so consumers of
// the reply queue can filter and route without parsing bodies. Publishing
// with an empty replyTo is a no-op: commands without a reply destination
// are fire-and-forget by contract.
//
// A transport failure while sending is returned to the caller but must
// never prevent acknowledgment of the original command; the polling loop
// logs the failure and acks regardless.
package reply
