// Package env is the scoped configuration context threaded through shape
// evaluation. A Context is an append-ordered overlay of typed entries:
// lookups return the most recently pushed value for a key, or the key's
// default when no entry matches. Contexts are values; deriving a child
// context never mutates the parent, so sibling subtrees evaluated from the
// same parent can never observe each other's overrides.
package env

// Key identifies one context entry and carries its default value. A lookup
// for a key that was never pushed returns the default, so every key has a
// defined value by construction and there is no unknown-key failure mode.
type Key[T any] struct {
	Name    string
	Default T
}

type entry struct {
	name  string
	value any
}

// Context is an immutable overlay of configuration entries. The zero value
// is the empty context: every key reads as its default.
type Context struct {
	entries []entry
}

// Get returns the value of the most recently pushed entry for k, or
// k.Default when the context has none. Linear scan from the newest entry;
// contexts are small and short-lived per evaluation.
func Get[T any](c Context, k Key[T]) T {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].name == k.Name {
			return c.entries[i].value.(T)
		}
	}
	return k.Default
}

// With returns a new context with one more entry appended. The receiver is
// unchanged; earlier entries for the same key stay in place and are only
// shadowed, never removed.
func With[T any](c Context, k Key[T], value T) Context {
	out := make([]entry, len(c.entries), len(c.entries)+1)
	copy(out, c.entries)
	return Context{entries: append(out, entry{name: k.Name, value: value})}
}

// Len returns the number of entries pushed onto the context (shadowed
// entries included).
func (c Context) Len() int {
	return len(c.entries)
}
