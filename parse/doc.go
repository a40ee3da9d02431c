// Package parse builds syntax trees from Verso markup token sequences.
//
// [Build] consumes every token exactly once and always returns a
// best-effort tree together with the diagnostics for every recovery it
// took. Block structure is tracked with an explicit context stack rather
// than recursion, so adversarial nesting cannot grow the call stack.
package parse
