package models

import "time"

// User represents a registered Miniter account. Password holds the bcrypt
// hash of the account password, never the plaintext.
type User struct {
	ID        int64
	Name      string
	Email     string
	Profile   string
	Password  string
	CreatedAt time.Time
}

// Tweet is a short message authored by a user. Tweets are never mutated
// after creation.
type Tweet struct {
	ID        int64
	UserID    int64
	Body      string
	CreatedAt time.Time
}

// TimelineEntry is one tweet visible in a user's aggregated feed.
type TimelineEntry struct {
	UserID int64
	Body   string
}

// Follow is a directed edge in the social graph: the follower's timeline
// includes the followed user's tweets.
type Follow struct {
	FollowerID int64
	FollowedID int64
	CreatedAt  time.Time
}
