package gui

type storeKey struct {
	id  ID
	key string
}

// GetStorage returns the value stored for key under node id, or def if there
// is none or it has another type.
func GetStorage[T any](c *Context, id ID, key string, def T) T {
	if v, ok := c.store[storeKey{id, key}]; ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	return def
}

// SetStorage keeps v for key under node id until the context is reset.
func SetStorage[T any](c *Context, id ID, key string, v T) {
	c.store[storeKey{id, key}] = v
}

// DeleteStorage removes the value for key under node id.
func DeleteStorage(c *Context, id ID, key string) {
	delete(c.store, storeKey{id, key})
}

// StorageLen is the number of stored entries.
func (c *Context) StorageLen() int { return len(c.store) }
