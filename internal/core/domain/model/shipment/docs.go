// Package shipment contains the Shipment aggregate: the immutable
// shipment facts, the append-only tracking log, and the lifecycle state
// machine that governs who may move a shipment between states.
//
// The aggregate never stores a status field. The current status is a
// view derived from the tracking log (latest updated_at, ties broken by
// insertion order), so the full history and the answer to "what is the
// status now" can never diverge.
package shipment
