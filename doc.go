// Package lrudict implements a fixed-capacity, in-memory key–value
// container with least-recently-used eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (map + doubly-linked recency list)
//   - Provide O(1) Set/Get/Peek/Delete via map index + recency pointers
//   - Keep recency bookkeeping exact: Get promotes, Peek never does
//   - Traverse entries in recency order without perturbing that order
//   - Stay single-threaded: callers wanting concurrent access wrap the
//     container in their own mutex
package lrudict
