// Package dispatch serializes work submitted from any goroutine onto a single
// owning goroutine.
//
// Events are message values handled by one Handler, in the order in which they
// were accepted by Submit. A handler never runs two events at the same time, so
// state touched only from the handler needs no locking.
//
// Submit has two modes. NonBlocking returns as soon as the event is queued.
// Blocking returns after the handler has returned for that event; anything the
// handler wrote into the event value is visible to the caller at that point.
//
// A Blocking submission from inside the handler deadlocks. Handlers that need
// follow-up work must submit it NonBlocking.
package dispatch
