package twitter95

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Feed returns the global tweet feed.
func (c *Client) Feed(ctx context.Context, opts *ListOptions) ([]Tweet, error) {
	var tweets []Tweet
	if err := c.getJSON(ctx, "/tweets/", listQuery(opts), &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// Timeline returns the tweets visible to userID at the given fake time, based
// on who they follow.
func (c *Client) Timeline(ctx context.Context, userID int64, fakeTime time.Time, opts *ListOptions) ([]Tweet, error) {
	q := listQuery(opts)
	q.Set("user_id", fmt.Sprintf("%d", userID))
	q.Set("fake_time", fakeTime.Format(time.RFC3339))

	var tweets []Tweet
	if err := c.getJSON(ctx, "/timeline/", q, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// Posts returns userID's own tweets visible at the given fake time.
func (c *Client) Posts(ctx context.Context, userID int64, fakeTime time.Time, opts *ListOptions) ([]Tweet, error) {
	q := listQuery(opts)
	q.Set("user_id", fmt.Sprintf("%d", userID))
	q.Set("fake_time", fakeTime.Format(time.RFC3339))

	var tweets []Tweet
	if err := c.getJSON(ctx, "/posts/", q, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// User returns a single user by id.
func (c *Client) User(ctx context.Context, userID int64) (*User, error) {
	var user User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d/", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Users returns registered users.
func (c *Client) Users(ctx context.Context, opts *ListOptions) ([]User, error) {
	var users []User
	if err := c.getJSON(ctx, "/users/", listQuery(opts), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByName returns a single user by their user name.
func (c *Client) UserByName(ctx context.Context, userName string) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/names/"+url.PathEscape(userName)+"/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserTweets returns all tweets authored by userID.
func (c *Client) UserTweets(ctx context.Context, userID int64) ([]Tweet, error) {
	var tweets []Tweet
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d/tweets/", userID), nil, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// UserProfile assembles a user's profile from two sequential fetches: the user
// record, then their tweets. A failure in either fetch aborts the composite
// and is returned as-is.
func (c *Client) UserProfile(ctx context.Context, userID int64) (*Profile, error) {
	user, err := c.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	tweets, err := c.UserTweets(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: *user, Tweets: tweets}, nil
}

// BioProfile returns the server-side user and bio aggregate.
func (c *Client) BioProfile(ctx context.Context, userID int64) (*BioProfile, error) {
	var profile BioProfile
	if err := c.getJSON(ctx, fmt.Sprintf("/profile/%d/", userID), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateTweet publishes a new tweet and returns the stored record.
func (c *Client) CreateTweet(ctx context.Context, tweet NewTweet) (*Tweet, error) {
	var created Tweet
	if err := c.postJSON(ctx, "/tweet/", tweet, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateUser registers a new user and returns the stored record.
func (c *Client) CreateUser(ctx context.Context, user NewUser) (*User, error) {
	var created User
	if err := c.postJSON(ctx, "/users/", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteUser removes a user along with their tweets and follow edges.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.deleteReq(ctx, fmt.Sprintf("/users/%d/", userID))
}
