// Package kernel contains shared value objects used across the courier
// domain model: identifiers and the shipment weight.
//
// Value objects in this package are immutable and validated on
// construction. The zero value of each type is invalid and is rejected
// by its Validate method, which allows persistence adapters to detect
// objects that bypassed their constructor.
package kernel
