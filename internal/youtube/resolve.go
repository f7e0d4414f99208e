// Package youtube turns raw YouTube links into canonical video references.
//
// Resolution is pure: it never touches the network and never fails. A link
// that cannot be parsed yields an empty Reference.
package youtube

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// VideoIDLength is the length of every YouTube video identifier.
const VideoIDLength = 11

const thumbnailURLFormat = "https://img.youtube.com/vi/%s/hqdefault.jpg"

// linkPattern is the upstream check applied before a link is accepted on a project.
var linkPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube|youtu|youtube-nocookie)\.(com|be)/`)

// Reference is the result of resolving a raw link.
type Reference struct {
	VideoID   string
	Thumbnail string
	// Shape names the URL form that matched, empty when none did.
	Shape string
}

// HasVideo reports whether the link produced a usable identifier.
func (r Reference) HasVideo() bool {
	return r.VideoID != ""
}

// rule extracts a candidate identifier from one URL shape.
type rule struct {
	name    string
	pattern *regexp.Regexp
}

// rules are tried in order; the first pattern that matches decides the result.
var rules = []rule{
	{name: "watch", pattern: regexp.MustCompile(`watch\?v=([^&#]*)`)},
	{name: "short", pattern: regexp.MustCompile(`youtu\.be/([^?&#/]*)`)},
	{name: "embed", pattern: regexp.MustCompile(`embed/([^?&#/]*)`)},
	{name: "v", pattern: regexp.MustCompile(`/v/([^?&#/]*)`)},
	{name: "user", pattern: regexp.MustCompile(`/u/[^/?&#]+/([^?&#/]*)`)},
	{name: "shorts", pattern: regexp.MustCompile(`/shorts/([^?&#/]*)`)},
}

// Resolve extracts the video identifier and thumbnail from rawLink.
//
// Only the first matching shape is consulted. If its candidate is not exactly
// VideoIDLength characters the result is empty, even if a later shape would
// have matched.
func Resolve(rawLink string) Reference {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(rawLink)
		if m == nil {
			continue
		}
		candidate := m[1]
		if utf8.RuneCountInString(candidate) != VideoIDLength {
			return Reference{Shape: r.name}
		}
		return Reference{VideoID: candidate, Thumbnail: ThumbnailURL(candidate), Shape: r.name}
	}
	return Reference{}
}

// ThumbnailURL returns the high quality thumbnail for videoID, or "" when
// videoID is empty.
func ThumbnailURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return fmt.Sprintf(thumbnailURLFormat, videoID)
}

// IsLink reports whether raw looks like a link on one of the YouTube domains.
func IsLink(raw string) bool {
	return linkPattern.MatchString(raw)
}
