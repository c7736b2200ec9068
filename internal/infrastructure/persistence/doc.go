// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer for accounts, service applications,
// billing, wallets, CMS content and the airport catalogue. Repositories
// resolve the active transaction from the context so application services
// can group several writes into one unit of work.
package persistence
