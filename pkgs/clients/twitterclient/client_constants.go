package twitterclient

// API Base Configuration
const (
	API_HOST = "https://api.twitter.com"
)

// REST Endpoint Constants
const (
	API_OAUTH2_TOKEN        = "/oauth2/token"
	API_USERS_SHOW          = "/1.1/users/show.json"
	API_FOLLOWERS_LIST      = "/1.1/followers/list.json"
	API_SEARCH_TWEETS       = "/1.1/search/tweets.json"
	API_FRIENDSHIPS_CREATE  = "/1.1/friendships/create.json"
	API_FRIENDSHIPS_DESTROY = "/1.1/friendships/destroy.json"
)

// Default Values
const (
	DEFAULT_FOLLOWERS_PAGE_SIZE = 200
	DEFAULT_SEARCH_PAGE_SIZE    = 100
)

// TIME_LAYOUT is the created_at format of the v1.1 API.
const TIME_LAYOUT = "Mon Jan 02 15:04:05 -0700 2006"
