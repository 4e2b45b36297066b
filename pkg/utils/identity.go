package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"vibecation/internal/models/response_models"
)

// IdentityResolver derives stable option identifiers for entities that may
// arrive without one. Derivation is a pure content hash, so the same
// activity phrased by two different members collapses to a single votable
// option. Two distinct activities sharing name, type and location also
// collapse; that collision is an accepted property of the scheme, not a
// bug to paper over.
type IdentityResolver interface {
	ResolveActivityID(activity response_models.Activity) string
	ResolveLocationID(name string) string
	ResolveCuisineID(name string) string
}

type contentHashResolver struct{}

func NewContentHashResolver() IdentityResolver {
	return contentHashResolver{}
}

const identityHashLen = 12

func contentHash(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:identityHashLen]
}

func (contentHashResolver) ResolveActivityID(activity response_models.Activity) string {
	if activity.ActivityID != "" {
		return activity.ActivityID
	}
	location := activity.Location
	if location == "" {
		location = activity.StartLocation
	}
	// Empty fields hash too; unnamed activities from different submissions
	// deliberately fold into one entry.
	return "act_" + contentHash(activity.ActivityName+"|"+activity.Type+"|"+location)
}

func (contentHashResolver) ResolveLocationID(name string) string {
	return "loc_" + contentHash(name)
}

// ResolveCuisineID passes the name through untouched; cuisines form a small
// catalog where the display name is already a usable key.
func (contentHashResolver) ResolveCuisineID(name string) string {
	return name
}
