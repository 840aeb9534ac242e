package tiff

import "github.com/fedragon/tiff-ifd/tiff/entry"

// wanted represents a set of Entry IDs
type wanted struct {
	ids map[entry.ID]struct{}
}

func newWanted(ids ...entry.ID) *wanted {
	we := wanted{
		ids: map[entry.ID]struct{}{},
	}
	for _, id := range ids {
		we.Put(id)
	}

	return &we
}

func (we *wanted) Put(id entry.ID) {
	we.ids[id] = struct{}{}
}

func (we *wanted) Contains(id entry.ID) bool {
	_, ok := we.ids[id]
	return ok
}

func (we *wanted) Remove(id entry.ID) {
	delete(we.ids, id)
}

func (we *wanted) Empty() bool {
	return len(we.ids) == 0
}

// Collect returns the first occurrence of each of the given entries, looking through every IFD depth-first.
// Entries that cannot be found are absent from the result.
func (doc *Document) Collect(ids ...entry.ID) map[entry.ID]entry.Entry {
	var entries = make(map[entry.ID]entry.Entry)

	we := newWanted(ids...)
	doc.Walk(func(dir Directory, _ Group, _ int) {
		if we.Empty() {
			return
		}
		for _, en := range dir.Entries {
			if we.Contains(en.ID) {
				entries[en.ID] = en
				we.Remove(en.ID)
			}
		}
	})

	return entries
}
