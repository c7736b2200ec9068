// Package models holds the gorm table models of the marketplace. Each model
// converts to and from its domain entity; JSON columns use gorm datatypes.
package models
