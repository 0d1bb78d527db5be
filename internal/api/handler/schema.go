package handler

import "github.com/ljhwogur/raid-hub/internal/core/ports"

// createVideoRequest is the submission body. Any id sent by the client is
// ignored.
type createVideoRequest struct {
	Title        string `json:"title"        validate:"notblank,max=100" example:"발탄 하드 1관문 클리어"`
	YoutubeURL   string `json:"youtubeUrl"   validate:"notblank,max=255" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	UploaderName string `json:"uploaderName" validate:"notblank,max=50"  example:"raider"`
	RaidName     string `json:"raidName"     validate:"notblank,max=20"  example:"발탄"`
	Difficulty   string `json:"difficulty"   validate:"max=20"           example:"하드"`
	Gate         string `json:"gate"         validate:"max=20"           example:"1관문"`
}

func (r createVideoRequest) toInput() ports.CreateVideoInput {
	return ports.CreateVideoInput{
		Title:        r.Title,
		YoutubeURL:   r.YoutubeURL,
		UploaderName: r.UploaderName,
		RaidName:     r.RaidName,
		Difficulty:   r.Difficulty,
		Gate:         r.Gate,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"notblank,min=7,max=20,username" example:"raider_01"`
	Password string `json:"password" validate:"notblank,min=8,max=30,bcryptlen" example:"s3cret-pass"`
}

// resultResponse is the envelope shared by registration, login, logout and
// every error.
type resultResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
}

type usernameCheckResponse struct {
	Username string `json:"username"`
	Exists   bool   `json:"exists"`
}
