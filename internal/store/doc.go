// Package store defines the persistence interfaces for jobs, contacts, orders
// and newsletter subscribers, along with the sentinel errors every
// implementation maps its failures onto.
//
// Each record kind lives in its own collection. There are no cross-collection
// transactions: a single call is atomic for the one record it touches and
// nothing more.
package store
