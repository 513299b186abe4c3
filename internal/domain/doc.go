// Package domain contains the core business entities of the careers site: job
// postings with the applications they own, contact-form leads, the orders
// created when a lead converts, and newsletter subscribers.
//
// Entities validate themselves and expose the mutations that keep their
// invariants intact. Persistence and transport live elsewhere.
package domain
