package platform

// Facebook is the secondary lookup target. Same validation shape as
// Instagram with Facebook's own non-profile paths and system pages.
var Facebook = Platform{
	Name:       "facebook",
	Domain:     "facebook.com",
	QueryToken: "Facebook",
	denySegments: []string{
		"/posts/", "/photos/", "/videos/", "/events/",
		"/groups/", "/watch/", "/marketplace/", "/reel/",
		"/stories/", "/share/", "/search/", "/hashtag/",
	},
	reservedHandles: map[string]bool{
		"pages": true, "groups": true, "events": true, "watch": true,
		"marketplace": true, "gaming": true, "stories": true, "reel": true,
		"about": true, "help": true, "privacy": true, "terms": true,
		"login": true, "sharer": true, "people": true, "public": true,
	},
}
