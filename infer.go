package variabledb

import "reflect"

// InferName scans env for a binding that refers to value and returns its
// name. Pointer-like values (pointers, maps, slices, channels, functions)
// match by reference identity; comparable values match by equality. When
// several bindings match, the smallest name in sort order wins, so repeated
// calls are deterministic. Empty names are never inferred. The scan is
// linear in the size of the environment.
func InferName(env Env, value any) (string, bool) {
	for _, name := range sortedKeys(env) {
		if name == "" {
			continue
		}
		if sameValue(env[name], value) {
			return name, true
		}
	}
	return "", false
}

// sameValue is the identity test behind name inference.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	default:
		return ra.Comparable() && a == b
	}
}
