package coders

// EnumName inverts an ordinal/wire-value → name map into the name → wire
// value shape required by packed.Map's variants argument, per spec.md §2
// item 6 "enum-name↔ordinal". Typical use:
// packed.Map(packed.U8, coders.EnumName(map[int64]string{0: "red", 1: "green"})).
func EnumName[T comparable](namesByValue map[T]string) map[string]T {
	out := make(map[string]T, len(namesByValue))
	for v, name := range namesByValue {
		out[name] = v
	}
	return out
}
