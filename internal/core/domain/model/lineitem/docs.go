// Package lineitem provides the LineItem entity: a requested quantity of a
// product attached to exactly one fulfillment.
//
// Key business rules:
//   - Quantity must be positive
//   - QuantityFulfilled starts at 0; nothing in this service advances it
//   - The owning fulfillment never changes once the line item exists
//   - A line item can only be created while its fulfillment is New; that
//     admission rule is enforced by the store in the same write as the insert
package lineitem
