// Package codec reads and writes values as YAML, using local tags to mark
// Success and Failure:
//
//	- !ok 5              # Tuple{OK, 5}
//	- !error not found   # Tuple{Err, "not found"}
//	- !ok [a, b, c]      # Tuple{OK, "a", "b", "c"}
//	- !ok [[a, b]]       # Tuple{OK, []any{"a", "b"}}
//	- null               # Absent
//	- [ok, 1]            # a plain list, Opaque
package codec
