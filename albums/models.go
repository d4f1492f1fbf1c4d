package albums

// Photo is one album photo as the server serialises it, including the
// per-viewer like state.
type Photo struct {
	ID           int    `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	MediumURL    string `json:"medium_url,omitempty"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	LikesCount   int    `json:"likes_count"`
	IsLiked      bool   `json:"is_liked"`
}

// GuestMessage is a guestbook entry left by an unauthenticated visitor.
type GuestMessage struct {
	Name      string `json:"name"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Summary is the listing view of an album.
type Summary struct {
	Slug          string `json:"slug"`
	Names         string `json:"names"`
	Date          string `json:"date,omitempty"`
	Category      string `json:"category,omitempty"`
	URL           string `json:"url,omitempty"`
	OwnerUsername string `json:"owner_username,omitempty"`
	IsOwner       bool   `json:"is_owner,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	PhotoCount    int    `json:"photo_count"`
	CoverPhoto    string `json:"cover_photo,omitempty"`
}

// Detail is the full album view, photos and guestbook included. The
// server writes photos back under "photos_out"; the "photos" field is
// write-only and lives on Draft.
type Detail struct {
	Slug           string         `json:"slug"`
	Names          string         `json:"names"`
	Date           string         `json:"date,omitempty"`
	Description    string         `json:"description,omitempty"`
	Category       string         `json:"category,omitempty"`
	URL            string         `json:"url,omitempty"`
	OwnerUsername  string         `json:"owner_username,omitempty"`
	IsOwner        bool           `json:"is_owner,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
	AllowDownloads bool           `json:"allow_downloads"`
	Photos         []Photo        `json:"photos_out,omitempty"`
	Messages       []GuestMessage `json:"messages,omitempty"`
}

// UploadedImage is the descriptor returned for each stored upload, and
// the shape the create/update endpoints accept back as a photo.
type UploadedImage struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	MediumURL    string `json:"medium_url,omitempty"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
}

// Draft carries the writable album fields for create and update. Zero
// fields are omitted so a partial Draft works as a PATCH payload.
type Draft struct {
	Names          string          `json:"names,omitempty"`
	Date           string          `json:"date,omitempty"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	AllowDownloads *bool           `json:"allow_downloads,omitempty"`
	Photos         []UploadedImage `json:"photos,omitempty"`
}
