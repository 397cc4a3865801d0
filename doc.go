// Package kruto provides:
//
// - A declarative schema model (Node, Object, Union) describing the domain types of a bot-messaging API
// - Type-directed Decode/Encode between generic JSON values and typed domain values
// - Union variant resolution by discriminator keys, in declared order
// - A date codec for the {"_":"date","value":...} wire shape
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only the schema model and engine in the root package.
// - Place builders under dsl/, domain types under types/, the HTTP client under client/,
//   handler routing under dispatch/ and filters/, and the CLI under cmd/kruto.
// - Decoding is lenient by default: data the schema cannot place is returned raw and
//   counted in Result.Fallbacks. Strict() or WithStrict turns that into Issues.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := codec.Unmarshal(body)
//	res, err := kruto.Decode(ctx, types.UpdateNode, kruto.Transform(v), kruto.WithRef(client))
//	upd, ok := res.Value.(types.Update)
//
//	wire, err := kruto.EncodeValue(msg)
package kruto
