package handlers

import "net/http"

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	ping := PingHandler{}
	auth := AuthHandler{Auth: deps.Auth}
	account := AccountHandler{Auth: deps.Auth, Users: deps.Users}
	tweets := TweetHandler{Auth: deps.Auth, Feed: deps.Feed}
	follows := FollowHandler{Auth: deps.Auth, Feed: deps.Feed}

	mux.HandleFunc("/ping", ping.Handle)
	mux.HandleFunc("/api/v1/auth/signup", auth.SignUp)
	mux.HandleFunc("/api/v1/auth/login", auth.Login)
	mux.HandleFunc("/api/v1/users/me", account.Delete)
	mux.HandleFunc("/api/v1/tweet", tweets.Create)
	mux.HandleFunc("/api/v1/timeline", tweets.Timeline)
	mux.HandleFunc("/api/v1/follow", follows.Follow)
	mux.HandleFunc("/api/v1/unfollow", follows.Unfollow)
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Auth  Authenticator
	Users UserDeleter
	Feed  Feed
}
