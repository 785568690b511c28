// Package domain contains the core domain entities of the reputation lookup
// service: target URLs, reputation records and the aggregated per-request
// report. These types are free of infrastructure concerns so they can be
// shared across packages.
package domain
