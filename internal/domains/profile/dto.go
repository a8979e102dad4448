package profile

import "conduit-backend/internal/domains/user"

type ProfileEnvelope struct {
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse is the public view of a user. The following flag is
// always relative to the viewer and recomputed per request.
type ProfileResponse struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

func NewProfileResponse(u *user.User, following bool) ProfileResponse {
	return ProfileResponse{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: following,
	}
}
