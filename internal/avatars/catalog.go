package avatars

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hollyberry/giftswap/internal/models"
)

// MysteryAvatarID is the placeholder returned for unknown lookups
const MysteryAvatarID = "mystery"

// catalog is the fixed set of avatars, loaded at process start
var catalog = []models.Avatar{
	{
		ID:     "santa-classic",
		Type:   models.AvatarTypeSanta,
		Name:   "Classic Santa",
		Colors: models.AvatarColors{Primary: "#c41e3a", Secondary: "#fffafa", Accent: "#ffd700"},
	},
	{
		ID:     "santa-cool",
		Type:   models.AvatarTypeSanta,
		Name:   "Cool Santa",
		Colors: models.AvatarColors{Primary: "#c41e3a", Secondary: "#1a1a2e", Accent: "#ffd700"},
	},
	{
		ID:     "elf-happy",
		Type:   models.AvatarTypeElf,
		Name:   "Happy Elf",
		Colors: models.AvatarColors{Primary: "#228b22", Secondary: "#c41e3a", Accent: "#ffd700"},
	},
	{
		ID:     "elf-mischief",
		Type:   models.AvatarTypeElf,
		Name:   "Mischievous Elf",
		Colors: models.AvatarColors{Primary: "#006400", Secondary: "#8b0000", Accent: "#ffd700"},
	},
	{
		ID:     "snowman-hat",
		Type:   models.AvatarTypeSnowman,
		Name:   "Snowman with Hat",
		Colors: models.AvatarColors{Primary: "#fffafa", Secondary: "#1a1a2e", Accent: "#ff6b35"},
	},
	{
		ID:     "snowman-scarf",
		Type:   models.AvatarTypeSnowman,
		Name:   "Snowman with Scarf",
		Colors: models.AvatarColors{Primary: "#fffafa", Secondary: "#c41e3a", Accent: "#228b22"},
	},
	{
		ID:     "reindeer-rudolph",
		Type:   models.AvatarTypeReindeer,
		Name:   "Rudolph",
		Colors: models.AvatarColors{Primary: "#8b4513", Secondary: "#c41e3a", Accent: "#ffd700"},
	},
	{
		ID:     "reindeer-dasher",
		Type:   models.AvatarTypeReindeer,
		Name:   "Dasher",
		Colors: models.AvatarColors{Primary: "#a0522d", Secondary: "#228b22", Accent: "#fffafa"},
	},
	{
		ID:     "penguin-santa",
		Type:   models.AvatarTypePenguin,
		Name:   "Penguin Santa",
		Colors: models.AvatarColors{Primary: "#1a1a2e", Secondary: "#fffafa", Accent: "#c41e3a"},
	},
	{
		ID:     "gingerbread",
		Type:   models.AvatarTypeGingerbread,
		Name:   "Gingerbread",
		Colors: models.AvatarColors{Primary: "#cd853f", Secondary: "#fffafa", Accent: "#c41e3a"},
	},
	{
		ID:     "present-red",
		Type:   models.AvatarTypePresent,
		Name:   "Red Present",
		Colors: models.AvatarColors{Primary: "#c41e3a", Secondary: "#ffd700", Accent: "#228b22"},
	},
	{
		ID:     "present-green",
		Type:   models.AvatarTypePresent,
		Name:   "Green Present",
		Colors: models.AvatarColors{Primary: "#228b22", Secondary: "#c41e3a", Accent: "#ffd700"},
	},
}

// mysteryAvatar is returned when a lookup does not resolve
var mysteryAvatar = models.Avatar{
	ID:     MysteryAvatarID,
	Type:   models.AvatarTypeMystery,
	Name:   "Mystery",
	Colors: models.AvatarColors{Primary: "#4a4a6a", Secondary: "#ffd700", Accent: "#c41e3a"},
}

// Catalog provides lookup and shuffled distribution over the fixed avatar set
type Catalog struct {
	random *rand.Rand
}

// Config for the avatar catalog
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new avatar catalog
func New(cfg *Config) *Catalog {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Catalog{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Size returns the number of avatars in the catalog, excluding the mystery
// placeholder
func (c *Catalog) Size() int {
	return len(catalog)
}

// Lookup returns the avatar with the given ID, or the mystery placeholder if
// the ID does not resolve. It never fails.
func (c *Catalog) Lookup(id string) models.Avatar {
	for _, a := range catalog {
		if a.ID == id {
			return a
		}
	}
	return mysteryAvatar
}

// Provisional returns the avatar for a participant added at roster position i,
// cycling through the catalog in order. The avatar is replaced with a shuffled
// one at game start.
func (c *Catalog) Provisional(i int) models.Avatar {
	if i < 0 {
		i = -i
	}
	return catalog[i%len(catalog)]
}

// AssignUnique returns n pairwise-distinct avatars in random order. The roster
// is capped at the catalog size before the game can start, so n exceeding the
// catalog indicates a broken invariant rather than bad user input.
func (c *Catalog) AssignUnique(n int) ([]models.Avatar, error) {
	if n < 0 {
		return nil, fmt.Errorf("avatar count cannot be negative: %d", n)
	}

	if n > len(catalog) {
		return nil, fmt.Errorf("cannot assign %d unique avatars from a catalog of %d", n, len(catalog))
	}

	shuffled := make([]models.Avatar, len(catalog))
	copy(shuffled, catalog)
	c.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:n], nil
}
