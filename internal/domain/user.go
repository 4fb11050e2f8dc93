package domain

import "time"

// User is a developer profile. PasswordHash never leaves the backend.
type User struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	Skills           []string  `json:"skills" db:"skills"`
	Experience       string    `json:"experience" db:"experience"`
	GithubLink       string    `json:"github_link" db:"github_link"`
	ProjectInterests []string  `json:"project_interests" db:"project_interests"`
	TechStacks       []string  `json:"tech_stacks" db:"tech_stacks"`
	ProfilePicture   string    `json:"profile_picture" db:"profile_picture"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// PublicProfile is the projection of a user shown to other users: the
// match-relevant attributes only, no credential data.
type PublicProfile struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Skills           []string `json:"skills"`
	Experience       string   `json:"experience"`
	GithubLink       string   `json:"github_link"`
	ProjectInterests []string `json:"project_interests"`
	TechStacks       []string `json:"tech_stacks"`
	ProfilePicture   string   `json:"profile_picture"`
}

func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		ID:               u.ID,
		Name:             u.Name,
		Skills:           u.Skills,
		Experience:       u.Experience,
		GithubLink:       u.GithubLink,
		ProjectInterests: u.ProjectInterests,
		TechStacks:       u.TechStacks,
		ProfilePicture:   u.ProfilePicture,
	}
}
