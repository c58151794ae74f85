package store

import "encoding/json"

const favoritesKey = "mm_favs"

// FavoriteStore holds the ordered favorite-asset ids, most recently
// favorited first. Ids are weak references: an id may outlive the asset it
// points at without invalidating the list.
type FavoriteStore struct {
	kv KV
}

// NewFavoriteStore creates a favorite store backed by the given KV
func NewFavoriteStore(kv KV) *FavoriteStore {
	return &FavoriteStore{kv: kv}
}

// List returns the favorite ids in display order. Corrupted or non-list
// stored state reads as empty, never as an error.
func (f *FavoriteStore) List() []string {
	raw, ok := f.kv.Get(favoritesKey)
	if !ok {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil || ids == nil {
		return []string{}
	}
	return ids
}

// Toggle removes id if present, otherwise prepends it, and returns the new
// ordering.
func (f *FavoriteStore) Toggle(id string) []string {
	current := f.List()

	next := make([]string, 0, len(current)+1)
	removed := false
	for _, existing := range current {
		if existing == id {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		next = append([]string{id}, next...)
	}

	f.save(next)
	return next
}

// Contains reports whether id is currently favorited
func (f *FavoriteStore) Contains(id string) bool {
	for _, existing := range f.List() {
		if existing == id {
			return true
		}
	}
	return false
}

func (f *FavoriteStore) save(ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	f.kv.Set(favoritesKey, string(data))
}
