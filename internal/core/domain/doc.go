// Package domain contains the core business entities for memora.
// It has no dependencies on other internal packages.
package domain
