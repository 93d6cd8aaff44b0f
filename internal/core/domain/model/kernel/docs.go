// Package kernel provides core domain primitives shared by the fulfillment,
// line item and product models.
//
// The package includes:
//   - ID: a store-assigned, positive, immutable record identifier
//
// Identifiers are assigned by the relational store in ascending order, so
// comparing two IDs also compares their creation order.
package kernel
