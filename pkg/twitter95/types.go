package twitter95

import "time"

// Tweet is a single tweet as served by the backend. FakeTime is the in-universe
// timestamp the service filters timelines by; it may be null for untimed tweets.
type Tweet struct {
	TweetID  int64      `json:"tweet_id"`
	AuthorID int64      `json:"author_id"`
	Text     string     `json:"text"`
	FakeTime *time.Time `json:"fake_time,omitempty"`
}

// NewTweet is the payload for creating a tweet.
type NewTweet struct {
	AuthorID int64      `json:"author_id"`
	Text     string     `json:"text"`
	FakeTime *time.Time `json:"fake_time,omitempty"`
}

// User is a twitter95 account.
type User struct {
	UserID      int64  `json:"user_id"`
	UserName    string `json:"user_name"`
	DisplayName string `json:"display_name,omitempty"`
}

// NewUser is the payload for creating a user.
type NewUser struct {
	UserName    string `json:"user_name"`
	DisplayName string `json:"display_name,omitempty"`
}

// Bio holds the free-form profile text for a user. The backend returns a
// bare {"user_id": ...} object when no bio has been written.
type Bio struct {
	UserID  int64  `json:"user_id"`
	Content string `json:"content,omitempty"`
}

// Profile is a user together with their tweets, assembled client-side by
// UserProfile from two sequential fetches.
type Profile struct {
	User
	Tweets []Tweet `json:"tweets"`
}

// BioProfile is the server-side user+bio aggregate served by /profile/{id}/.
type BioProfile struct {
	User User `json:"user"`
	Bio  Bio  `json:"bio"`
}

// ListOptions carries the query parameters shared by the list endpoints.
// The zero value asks for the backend defaults (limit 10, descending).
type ListOptions struct {
	Limit     int
	Ascending bool
}
