package kruto

// Transform prepares a freshly received wire value for decoding. Working in
// place on every map at any depth (lists included), it replaces date-shaped
// sub-values with time.Time and deletes keys whose value is null. The engine
// treats a missing key and a null value the same way, so pruning nulls up
// front keeps every later stage free of explicit nils.
//
// Date-shaped maps whose value does not parse are left untouched.
func Transform(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if IsDateMap(t) {
			if tm, _, err := DecodeDate(t); err == nil {
				return tm
			}
			return t
		}
		for k, sub := range t {
			if sub == nil {
				delete(t, k)
				continue
			}
			t[k] = Transform(sub)
		}
		return t
	case []any:
		for i, sub := range t {
			t[i] = Transform(sub)
		}
		return t
	default:
		return v
	}
}
