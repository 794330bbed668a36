// Package containers provides the three work containers used by the
// grid search strategies of github.com/katalvlaran/gridpath.
//
// What:
//
//   - MinHeap: binary min-heap keyed by an ordered value captured at push time.
//     Used by A* as its open set.
//   - Queue:   singly linked FIFO. Used by BFS.
//   - Stack:   singly linked LIFO. Used by DFS.
//
// MinHeap has no decrease-key. Callers that need to lower a key push a new
// entry and discard the stale one when it is popped (lazy deletion).
// Ties between equal keys are broken only by the heap's internal layout.
//
// Complexity:
//
//   - MinHeap: Push/Pop O(log n), Peek/Len/IsEmpty O(1).
//   - Queue:   Enqueue/Dequeue/Clear O(1).
//   - Stack:   Push/Pop/Clear O(1).
//
// Errors:
//
//   - ErrEmptyContainer: Pop, Dequeue or Peek on an empty container. The
//     search strategies always test IsEmpty first, so seeing this error from
//     a strategy means a logic defect; it is returned, never swallowed.
//
// None of the containers are safe for concurrent use.
package containers
