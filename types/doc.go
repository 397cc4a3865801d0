// Package types declares the domain model of the remote bot API: updates,
// messages, chats, users and their payloads.
//
// Every object is bound to its wire shape once, at package initialisation,
// with package dsl. Unions are Go interfaces implemented by pointers to their
// variants; decode one with kruto.Decode against the matching *Node variable
// and switch on the concrete type.
//
// Values decoded by a client carry a back-reference to it, so conveniences
// such as (*MessageBase).Reply or (*CallbackQuery).Answer can issue calls.
// Values built by hand return ErrDetached from those methods.
package types
