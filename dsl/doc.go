// Package dsl provides the builders used to declare kruto schema nodes.
//
// Overview
//   - Leaves: Int(), Float(), String(), Bool(), Date(), Any(), Null().
//   - Wrappers: Optional(n), List(n), Literal(v).
//   - Objects: ObjectOf[T](name).Field(...).Discriminate(...).MustBuild() binds each
//     wire key to a location in T through a typed accessor, so a field/key pair that
//     does not match T fails to compile. No struct tags or runtime reflection over T
//     are involved.
//   - Unions: Union(name, variants...) or Forward(name) + Define(u, variants...) for
//     recursive types.
//
// Field binders
//   - Prop: the Go field holds the decoded value as-is (scalars, *Object, union interfaces).
//   - Opt: optional scalars stored as *E.
//   - Slice: lists stored as []E.
//   - Grid: lists of lists stored as [][]E.
//   - Embed: lift the fields of a shared embedded struct into each variant.
//
// Example
//
//	type User struct {
//	    ID        int64
//	    FirstName string
//	    Username  *string
//	}
//
//	var UserNode = dsl.ObjectOf[User]("User").Field(
//	    dsl.Prop("ID", "id", dsl.Int(), func(u *User) *int64 { return &u.ID }),
//	    dsl.Prop("FirstName", "firstName", dsl.String(), func(u *User) *string { return &u.FirstName }),
//	    dsl.Opt("Username", "username", dsl.String(), func(u *User) **string { return &u.Username }),
//	).MustBuild()
package dsl
