// Package task holds the task model, the in-memory store, and the
// ordering used for the active list.
//
// # Priority Values
//
//   - "High": rank 1, listed first when sorting ascending
//   - "Medium": rank 2
//   - "Low": rank 3, the form default
//
// Any other priority ranks after Low.
//
// # Lifecycle
//
// A task is created incomplete by Store.Add, may be completed once by
// Store.Complete (there is no way back), and may be removed by Store.Delete
// at any point. Nothing else mutates a stored task.
//
// # Ordering
//
// Sort never mutates its input and is stable. Date ordering places tasks
// with a zero deadline after every dated task in both directions.
package task
