// Package pool maintains one producer handle per broker and routes produce
// requests to the right handle.
//
// A Pool is created in one of two delivery modes, fixed for its lifetime.
// In sync mode every Send performs a blocking round trip per destination
// broker, batching all units bound for the same broker into a single call.
// In async mode payloads are enqueued individually on a buffered producer
// and Send returns without any delivery acknowledgment.
//
// The pool does not discover brokers and does not assign partitions.
// Callers register brokers with AddProducer and address every Data at an
// already-resolved (broker, partition) pair. Sending to a broker id that
// has no registered handle drops the affected units: nothing is delivered
// for them and no error is returned. The drop is reported on the injected
// logger so that it stays observable; callers that need hard routing
// guarantees must register all brokers before sending.
package pool
