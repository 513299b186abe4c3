// Package service holds the business operations of the careers site: job
// postings and their applications, contact-form leads and the newsletter.
//
// Services depend on the store interfaces and on small ports for the outside
// world (resume uploads, outbound mail, the job list cache). Expected failures
// come back as sentinel errors or *domain.ValidationError; anything else is
// wrapped in a *ServiceError.
package service
