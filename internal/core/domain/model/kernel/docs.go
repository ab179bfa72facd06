// Package kernel contains the shared value objects used across all domain
// aggregates: the identifier type and nothing else. Aggregate-specific value
// objects live with their aggregates.
package kernel
