// Package ports declares the boundaries of the ledger core. Handlers call the
// service ports (ProjectService, MilestoneService, CategoryService,
// ReportService), which the app package implements. The app package in turn
// depends on Repositories, Transactor and ReportRenderer, implemented by the
// storage and renderer adapters.
package ports
