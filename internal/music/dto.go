package music

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5,max=1024"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SongRequest carries the client-supplied song fields. The audio URL is never
// taken from the client; it is filled in from the uploader's response.
type SongRequest struct {
	Name     string `json:"name" validate:"required"`
	Artist   string `json:"artist" validate:"required"`
	Img      string `json:"img"`
	Duration string `json:"duration"`
}

// SongUpdate holds a partial update; nil fields are left untouched.
type SongUpdate struct {
	Name     *string `json:"name,omitempty"`
	Artist   *string `json:"artist,omitempty"`
	Song     *string `json:"song,omitempty"`
	Img      *string `json:"img,omitempty"`
	Duration *string `json:"duration,omitempty"`
}
