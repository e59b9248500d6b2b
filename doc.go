// Package basketweave is the Composition Root for basketweave.
//
// It connects the document model (pkg/core) with the source directory
// materializer (pkg/adapters/fs) and the YAML manifest loader (pkg/manifest).
//
// Philosophy:
//
// A BasKet source directory is generated, never edited by hand. You describe
// baskets, notes and tags in memory (or in a manifest), every input is
// validated when the model is built, and a single run writes the whole tree:
// the basket index, one properties file per basket, spilled note bodies and
// the media they reference.
//
// Features:
//
//   - **Validated Model**: colors, state ids, file payloads and note types are checked at construction.
//   - **Closed Content Types**: every note variant is a concrete Go type; serialization switches over all of them.
//   - **Deterministic Output**: minidom-compatible XML, attributes in a fixed order, injectable clock and folder tokens.
//   - **Collision Safe Resources**: same-named files with different bytes are renamed, never silently dropped.
//   - **Pluggable Filesystem**: output goes through go-billy, so tests run on memfs.
//
// Usage:
//
//	welcome, _ := basketweave.NewBasket("Welcome", basketweave.BasketFolder("welcome"))
//	forest, _ := basketweave.NewForest([]*basketweave.Basket{welcome}, nil)
//
//	dir, err := basketweave.Materialize(ctx, "./Welcome.baskets", forest,
//		basketweave.WithLogger(logger),
//	)
package basketweave
