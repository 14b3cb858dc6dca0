// Package arr reads nested pipeline values with dot-separated paths.
//
// Values are the shapes decoded from JSON or CUE: map[string]any, []any
// and scalars. A path segment selects a map key, or a list index when the
// segment is a decimal integer:
//
//	v := map[string]any{
//	    "user": map[string]any{
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//	arr.Get(v, "user.tags.1") // → "ops", true
//	arr.Dot(v)                // → {"user.tags.0": "admin", "user.tags.1": "ops"}
package arr
