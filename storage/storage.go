package storage // import "github.com/flipbooklib/flipbook/storage"

// ObjectStore stores binary objects under a logical prefix and returns a
// publicly resolvable URL per object.
type ObjectStore interface {
	// Upload stores data under the given prefix using a generated
	// collision-resistant name that preserves filename's extension.
	Upload(prefix, filename string, data []byte) (string, error)
}

// Logical prefixes inside the bucket.
const (
	PrefixCovers = "covers"
	PrefixPages  = "pages"
)
