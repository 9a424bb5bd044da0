// Package forms provides the combinator layer for building formwork form
// trees: leaf fields, labeled nesting, applicative products, validation
// wrappers and sequence-valued fields, plus a small library of primitive
// fields and rule helpers.
//
// Forms are declared once, usually in package variables, and are immutable
// thereafter; a sub-form may be reused inside any number of parents. All
// identity is carried by paths computed from labels during binding, never by
// shared mutable state, so one declaration serves arbitrarily many
// concurrent binds.
//
// Malformed compositions (empty labels, colliding paths) are programmer
// errors and panic at construction time, never at bind time.
package forms
