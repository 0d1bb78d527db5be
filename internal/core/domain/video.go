package domain

// RaidVideo is a shared raid-clear video link. Records are created and
// deleted, never updated.
type RaidVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	YoutubeURL   string `json:"youtubeUrl"`
	UploaderName string `json:"uploaderName"`
	RaidName     string `json:"raidName"`
	Difficulty   string `json:"difficulty"`
	Gate         string `json:"gate"`
}
