// Package core contains pipeline plumbing utilities: channel helpers, worker
// configuration via context, and the locomotive that drives stages. It does
// not define any combinator semantics; lite builds its stages on top of it.
package core
