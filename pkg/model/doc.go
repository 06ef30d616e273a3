// Package model defines the form document consumed by the survey renderer:
// a Form owns ordered Pages, which own ordered Fields, which may own ordered
// Choices. Every user-facing label is a LocalizedString keyed by locale code
// with a mandatory "default" entry used as fallback.
//
// The types are aliases of internal/model so the JSON codec (wire order,
// preservation of unknown members) stays in one place. Values are plain data;
// mutation rules live in pkg/document and pkg/choices.
package model
