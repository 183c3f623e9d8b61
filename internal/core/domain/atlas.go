package domain

// Sprite is one image packed into an atlas.
type Sprite struct {
	Name string
	Path string
	Data []byte
}

// Atlas is a loaded container of sprites. It is read-only after NewAtlas
// returns and safe for concurrent lookups.
type Atlas struct {
	name    string
	sprites []Sprite
	index   map[string]int
}

// NewAtlas builds an atlas. Sprites are indexed by name and by path; the
// first sprite claiming a lookup key keeps it.
func NewAtlas(name string, sprites []Sprite) *Atlas {
	a := &Atlas{
		name:    name,
		sprites: make([]Sprite, len(sprites)),
		index:   make(map[string]int, len(sprites)*2),
	}
	copy(a.sprites, sprites)

	for i, s := range a.sprites {
		for _, key := range []string{s.Name, s.Path} {
			if key == "" {
				continue
			}
			if _, ok := a.index[key]; !ok {
				a.index[key] = i
			}
		}
	}
	return a
}

// Name returns the atlas name.
func (a *Atlas) Name() string {
	return a.name
}

// Sprite looks up a sprite by name or path.
func (a *Atlas) Sprite(key string) (Sprite, bool) {
	i, ok := a.index[key]
	if !ok {
		return Sprite{}, false
	}
	return a.sprites[i], true
}

// SpriteNames returns the sprite names in packing order.
func (a *Atlas) SpriteNames() []string {
	names := make([]string, 0, len(a.sprites))
	for _, s := range a.sprites {
		names = append(names, s.Name)
	}
	return names
}

// Len returns the number of packed sprites.
func (a *Atlas) Len() int {
	return len(a.sprites)
}
