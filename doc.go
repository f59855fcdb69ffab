// Package substore locates and materializes the submodules of a repository
// through a pluggable storage backend.
//
// A parent repository keeps one store for its whole lifetime. The backend that
// created it is recorded in <repo>/.substore/store.yaml and selected again on
// every reopen.
//
// Backends:
//
//   - "default": one plain git repository per submodule under
//     <repo>/.substore/submodules/<hex(name)>/.
//   - "empty": submodules are disabled; every load succeeds with nothing.
//
// Usage:
//
//	store, err := substore.Init("./repo", substore.WithLogger(logger))
//
//	// Where should the clone go?
//	dir := store.SubmodulePath("vendor/lib")
//
//	// Get a handle once content exists there.
//	sub, err := store.Submodule("vendor/lib")
package substore
