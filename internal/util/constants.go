package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

const (
	MimeVideo = "video/"
	MimeImage = "image/"
)

var AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm"}
