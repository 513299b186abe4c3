// Package mocks provides shared test doubles for the store interfaces and the
// service ports.
//
// Store mocks are backed by in-memory maps, so a test gets working
// persistence by default and overrides single methods through the Fn fields:
//
//	jobs := mocks.NewMockJobStore()
//	jobs.UpdateFn = func(ctx context.Context, job *domain.Job) error {
//	    return errors.New("db down")
//	}
//
// Stored records are copied on the way in and out, so callers never share
// memory with the store, the same as with a real database.
package mocks
