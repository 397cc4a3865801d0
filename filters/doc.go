// Package filters provides composable predicates for update handlers.
//
// A Filter is a plain func(T) bool with combinators:
//
//	filters.Text.And(filters.Private).Or(filters.Photo)
//	filters.Text.Not()
//	filters.All(filters.Group, filters.Reply)
//
// Predefined filters select a message variant (Text, Photo, ...), the
// Service family, message attributes (Out, Bot, Reply, Forward, ...) and the
// chat type (Private, Group, Channel). Where compares a field reached by a
// Go field path and covers the cases the predefined filters do not.
package filters
