package entity

import (
	"time"

	"vidtube/internal/errors"

	"github.com/google/uuid"
)

// TargetKind names the kind of entity a reaction points at.
type TargetKind string

const (
	TargetKindVideo   TargetKind = "video"
	TargetKindComment TargetKind = "comment"
	TargetKindTweet   TargetKind = "tweet"
)

// ErrInvalidTargetKind is returned when a reaction target kind is not one of video, comment or tweet.
var ErrInvalidTargetKind = errors.New("invalid like target kind")

// ParseTargetKind converts a stored or user-supplied kind into a TargetKind.
func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case TargetKindVideo, TargetKindComment, TargetKindTweet:
		return TargetKind(s), nil
	default:
		return "", errors.Wrapf(ErrInvalidTargetKind, "kind %q", s)
	}
}

// LikeTarget is the tagged union Video(id) | Comment(id) | Tweet(id).
// The zero value is invalid; build targets with VideoTarget, CommentTarget or TweetTarget.
type LikeTarget struct {
	kind TargetKind
	id   uuid.UUID
}

// VideoTarget points a reaction at a video.
func VideoTarget(id uuid.UUID) LikeTarget {
	return LikeTarget{kind: TargetKindVideo, id: id}
}

// CommentTarget points a reaction at a comment.
func CommentTarget(id uuid.UUID) LikeTarget {
	return LikeTarget{kind: TargetKindComment, id: id}
}

// TweetTarget points a reaction at a tweet.
func TweetTarget(id uuid.UUID) LikeTarget {
	return LikeTarget{kind: TargetKindTweet, id: id}
}

// NewLikeTarget rebuilds a target from its persisted parts.
func NewLikeTarget(kind string, id uuid.UUID) (LikeTarget, error) {
	k, err := ParseTargetKind(kind)
	if err != nil {
		return LikeTarget{}, err
	}

	return LikeTarget{kind: k, id: id}, nil
}

// Kind returns the variant of the union.
func (t LikeTarget) Kind() TargetKind {
	return t.kind
}

// ID returns the payload of the union.
func (t LikeTarget) ID() uuid.UUID {
	return t.id
}

// IsZero reports whether the target was never set.
func (t LikeTarget) IsZero() bool {
	return t.kind == "" && t.id == uuid.Nil
}

// Like is a reaction of a user to exactly one target.
type Like struct {
	ID        uuid.UUID
	LikedBy   uuid.UUID
	Target    LikeTarget
	CreatedAt time.Time
}

// ReactionState is the state of an (actor, target) pair after a toggle.
type ReactionState string

const (
	ReactionAbsent  ReactionState = "absent"
	ReactionPresent ReactionState = "present"
)

// Present reports whether the record exists.
func (s ReactionState) Present() bool {
	return s == ReactionPresent
}
