// Package catalog holds the static algorithm descriptors.
//
// A Descriptor carries display metadata (name, category, type, difficulty),
// descriptive text, labeled formulas, a code sample and the kind of widget
// that illustrates the algorithm. All fields are populated at authoring
// time; New rejects incomplete records.
//
// The table is immutable once built. Get and All return deep copies, so a
// Catalog can be shared freely between goroutines.
//
//	d, err := catalog.Default().Get("k-means")
//	if errors.Is(err, catalog.ErrNotFound) {
//	    // render the not-found view
//	}
package catalog
