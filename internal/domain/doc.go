// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project, domain/milestone,
// domain/category). This root package holds sentinel errors and the validation
// and rule-violation error types shared across all entities.
package domain
