// Package walk turns a conditional graph plus a source of answers
// into an ordered walk with collected results.
//
// Traversal is the input-driven walk: starting at the root, each step
// asks for the current vertex's answer (from the override context or
// the injected AnswerSource), records it, and resolves the next vertex
// from the outgoing edge conditions. BreadthFirst is the read-only
// enumeration variant used for inspection, visiting every reachable
// vertex exactly once in FIFO discovery order.
package walk
