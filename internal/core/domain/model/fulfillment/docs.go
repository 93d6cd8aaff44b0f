// Package fulfillment provides the Fulfillment entity and its status state machine.
//
// A fulfillment is an instruction to pick up or deliver stock. Its status only
// ever advances along a single path:
//
//	New ──> Initialized ──> InProgress ──> Fulfilled
//
// The legal edges are kept as data (see AllowedPredecessors) rather than as
// scattered conditionals, so that stores can embed the predecessor set in the
// predicate of a single conditional write.
//
// Key business rules:
//   - Fulfillments are created in New
//   - Type is fixed at creation
//   - No transition skips a state or revisits a prior one
//   - Line items may only attach while the fulfillment is New
package fulfillment
