package seq

import "fmt"

// decode resolves an [Item] into the indexes it stands for, validated
// against this collection.
func (c *Collection) decode(item Item) ([]int, error) {
	switch it := item.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil item", ErrInvalidItemType)
	case Index:
		if it < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, int(it))
		}
		return []int{int(it)}, nil
	case Member:
		m, ok := c.Match(string(it))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPatternMismatch, string(it))
		}
		return []int{m.Index}, nil
	case *Collection:
		if it == nil {
			return nil, fmt.Errorf("%w: nil collection", ErrInvalidItemType)
		}
		if !c.IsCompatible(it) {
			return nil, fmt.Errorf(
				"%w: %s%s%s vs %s%s%s",
				ErrIncompatibleCollection,
				it.head, it.paddingToken(), it.tail,
				c.head, c.paddingToken(), c.tail,
			)
		}
		return it.Indexes(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidItemType, item)
	}
}

// Add inserts items into the collection. An item may be an [Index], a
// [Member] that matches the member expression, or a compatible
// [*Collection] whose indexes are all inserted.
//
// The call is atomic: every item is validated before any index is
// committed, so a failed Add leaves the collection untouched. Indexes
// already present are absorbed silently.
//
// Returns [ErrInvalidIndex], [ErrPatternMismatch],
// [ErrIncompatibleCollection] or [ErrInvalidItemType] depending on the
// offending item.
func (c *Collection) Add(items ...Item) error {
	pending := make([]int, 0, len(items))
	for _, item := range items {
		indexes, err := c.decode(item)
		if err != nil {
			return err
		}
		pending = append(pending, indexes...)
	}
	if c.indexes == nil {
		c.indexes = make(map[int]struct{}, len(pending))
	}
	for _, index := range pending {
		c.indexes[index] = struct{}{}
	}
	return nil
}

// Remove discards items from the collection, best effort: items that are
// invalid, do not match, are incompatible, or are simply not present are
// skipped silently.
func (c *Collection) Remove(items ...Item) {
	for _, item := range items {
		indexes, err := c.decode(item)
		if err != nil {
			continue
		}
		for _, index := range indexes {
			delete(c.indexes, index)
		}
	}
}

// RemoveStrict discards items from the collection and stops at the first
// invalid one, returning its error. Removals applied before the failure
// stay applied. Removing an index that is valid but not present is not an
// error.
func (c *Collection) RemoveStrict(items ...Item) error {
	for _, item := range items {
		indexes, err := c.decode(item)
		if err != nil {
			return err
		}
		for _, index := range indexes {
			delete(c.indexes, index)
		}
	}
	return nil
}

// Merge inserts every index of other into this collection. Equivalent to
// Add(other): other must be compatible or [ErrIncompatibleCollection] is
// returned, and a nil other yields [ErrInvalidItemType].
func (c *Collection) Merge(other *Collection) error {
	return c.Add(other)
}
