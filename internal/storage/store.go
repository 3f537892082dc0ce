package storage

// Collection names used by the application.
const (
	ProductsCollection   = "products"
	CategoriesCollection = "categories"
	CartsCollection      = "carts"
)

// CollectionStore persists named collections of JSON records. Read returns
// the entire collection; Write replaces it entirely. A collection that was
// never written reads as empty.
type CollectionStore interface {
	// Read unmarshals the whole named collection into out, which must be a
	// pointer to a slice.
	Read(name string, out any) error
	// Write replaces the whole named collection with records.
	Write(name string, records any) error
}
