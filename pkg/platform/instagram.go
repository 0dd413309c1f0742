package platform

// Instagram is the primary lookup target.
var Instagram = Platform{
	Name:       "instagram",
	Domain:     "instagram.com",
	QueryToken: "Instagram",
	denySegments: []string{
		"/p/", "/explore/", "/tags/", "/reel/",
		"/stories/", "/share/", "/search/", "/tv/",
	},
	reservedHandles: map[string]bool{
		"p": true, "explore": true, "tags": true, "stories": true,
		"reel": true, "tv": true, "about": true, "help": true,
		"privacy": true, "terms": true, "accounts": true, "hashtag": true,
	},
}
