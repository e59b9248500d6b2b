// Package core holds the in-memory BasKet model: baskets, notes and the tag
// registry they reference.
//
// Constructors validate their input and return errors wrapping the sentinels in
// errors.go. Ownership flows from parent to child; a note or basket attaches to
// at most one parent and cycles are rejected. Forest.Validate checks what no
// single constructor can see, such as states that were never registered.
package core
