package types

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// SourceID identifies an upstream view that feeds the dashboard (e.g. "roadmap", "sprint-42")
type SourceID string

var sourceIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// String returns the string representation
func (id SourceID) String() string {
	return string(id)
}

// Validate checks that the source ID is usable as a storage key
func (id SourceID) Validate() error {
	if id == "" {
		return goerr.New("source ID cannot be empty")
	}
	if !sourceIDPattern.MatchString(string(id)) {
		return goerr.New("source ID contains invalid characters", goerr.V("source", id))
	}
	return nil
}

// ItemID represents a stored timeline item identifier
type ItemID string

// String returns the string representation
func (id ItemID) String() string {
	return string(id)
}

// NewItemID creates a new ItemID using UUID v7 so that IDs sort by creation time
func NewItemID() ItemID {
	id, err := uuid.NewV7()
	if err != nil {
		return ItemID(uuid.New().String())
	}
	return ItemID(id.String())
}

// ChannelID represents a Slack channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}
