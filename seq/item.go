package seq

// Item is anything that can be added to or removed from a [Collection]:
// an [Index], a [Member] string, or another [*Collection].
//
// The interface is sealed; those three implementations are the only
// ones. Passing a nil Item (or a nil *Collection) to [Collection.Add],
// [Collection.Remove] or [Collection.RemoveStrict] yields
// [ErrInvalidItemType].
type Item interface {
	item()
}

// Index is a bare sequence index. Adding an Index inserts it directly;
// removing it discards it if present.
type Index int

// Member is a formatted member string such as "file.0001.ext". Adding a
// Member requires it to match the collection's member pattern; the index it
// encodes is what actually gets stored.
type Member string

func (Index) item()       {}
func (Member) item()      {}
func (*Collection) item() {}
