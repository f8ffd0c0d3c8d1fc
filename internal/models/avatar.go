package models

// AvatarType categorizes the creature an avatar depicts
type AvatarType string

const (
	AvatarTypeSanta       AvatarType = "santa"
	AvatarTypeElf         AvatarType = "elf"
	AvatarTypeSnowman     AvatarType = "snowman"
	AvatarTypeReindeer    AvatarType = "reindeer"
	AvatarTypePenguin     AvatarType = "penguin"
	AvatarTypeGingerbread AvatarType = "gingerbread"
	AvatarTypePresent     AvatarType = "present"
	AvatarTypeMystery     AvatarType = "mystery"
)

// AvatarColors holds the three-color palette used to render an avatar
type AvatarColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Avatar is an immutable catalog entry describing a visual identity
type Avatar struct {
	// ID is the stable catalog key
	ID string `json:"id"`

	// Type is the creature category
	Type AvatarType `json:"type"`

	// Name is the display name shown under the avatar
	Name string `json:"name"`

	// Colors is the primary/secondary/accent palette
	Colors AvatarColors `json:"colors"`
}
