// Package dom implements the host document tree that hew builds against.
//
// The tree is real and mutable: elements, text nodes, and comments are
// materialized immediately, there is no virtual or intermediate
// representation. A Document creates nodes by tag name and owns tag-name
// validation; everything else (attributes, class list, inline style,
// dataset, event listeners, child insertion) lives on the nodes themselves.
//
// Nodes are not safe for concurrent mutation. A constructed tree is owned
// by whoever holds its root; the dom package never retains references.
package dom
