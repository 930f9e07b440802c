// Package rowconv resolves how a structured row can be converted into a
// caller-specified Go type and synthesizes reusable converters for the
// single-field case.
//
// Resolution first consults an ordered chain of pluggable schema providers;
// on a miss it compares the input schema with the output type's registered
// schema, falling back to unboxing when the input carries exactly one field.
// The result is either a coder covering the whole row, an unboxed field type
// that must be converted to the output type, or a hard mismatch error.
//
// # Resolving a conversion
//
//	reg := registry.New()
//	if err := registry.Register[User](reg); err != nil { ... }
//
//	resolver, err := rowconv.NewResolver(rowconv.Config{Registry: reg})
//	if err != nil { ... }
//
//	info, err := resolver.Resolve(ctx, inputSchema, reflect.TypeFor[User]())
//	if err != nil { ... }
//	if info.UnboxedType != nil {
//	    convert, err := rowconv.ConvertPrimitive(info.UnboxedType, reflect.TypeFor[int64](), typeconv.Default)
//	    ...
//	}
//
// Converters returned by ConvertPrimitive are pure functions built once per
// (field type, output type) pair; callers may cache and share them across
// goroutines without synchronization.
package rowconv
