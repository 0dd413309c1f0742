package platform

import "testing"

func TestInstagramIsProfileURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://instagram.com/joespizza", true},
		{"https://www.instagram.com/joespizza", true},
		{"https://instagram.com/joespizza/", true},
		{"http://instagram.com/joespizza", true},
		{"https://INSTAGRAM.com/JoesPizza", true},
		{"https://instagram.com/", false},
		{"https://instagram.com/joespizza/reels", false},
		{"https://instagram.com/accounts/login", false},
		{"ftp://instagram.com/joespizza", false},
		{"instagram.com/joespizza", false},
		{"https://example.com/joespizza", false},
		{"https://myinstagram.com.evil.net/joespizza", false},
		{"https://instagram.com/joespizza?hl=en", true},
		{"://not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := Instagram.IsProfileURL(tt.url); got != tt.want {
				t.Errorf("IsProfileURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestInstagramDenySegments(t *testing.T) {
	// Every denylisted segment rejects, even on otherwise well-formed URLs.
	urls := []string{
		"https://instagram.com/p/xyz123",
		"https://instagram.com/explore/locations/austin",
		"https://instagram.com/tags/pizza",
		"https://instagram.com/reel/abc",
		"https://instagram.com/stories/joespizza/123",
		"https://instagram.com/share/something",
		"https://instagram.com/search/top",
		"https://instagram.com/tv/episode1",
		"https://example.com/p/xyz123",
	}
	for _, u := range urls {
		if Instagram.IsProfileURL(u) {
			t.Errorf("IsProfileURL(%q) = true, want false", u)
		}
	}
}

func TestInstagramHandle(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://instagram.com/joespizza", "joespizza"},
		{"https://www.instagram.com/JoesPizza/", "joespizza"},
		{"https://instagram.com/joespizza?igshid=abc", "joespizza"},
		{"https://instagram.com/joespizza/posts", ""},
		{"https://instagram.com/explore", ""},
		{"https://instagram.com/accounts", ""},
		{"https://instagram.com/hashtag", ""},
		{"https://instagram.com/x", ""},
		{"https://example.com/joespizza", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := Instagram.Handle(tt.url); got != tt.want {
				t.Errorf("Handle(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestFacebookValidation(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://facebook.com/joespizza", "joespizza"},
		{"https://www.facebook.com/JoesPizzaATX/", "joespizzaatx"},
		{"https://facebook.com/joespizza/posts/123", ""},
		{"https://facebook.com/groups/pizzalovers", ""},
		{"https://facebook.com/marketplace", ""},
		{"https://facebook.com/watch", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := Facebook.Handle(tt.url); got != tt.want {
				t.Errorf("Handle(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestMatchesLink(t *testing.T) {
	if !Instagram.MatchesLink("https://www.instagram.com/p/xyz") {
		t.Error("MatchesLink should accept any instagram.com link")
	}
	if Instagram.MatchesLink("https://example.com/instagram-profile") {
		t.Error("MatchesLink should reject non-instagram hosts")
	}
	if !Instagram.MatchesLink("HTTPS://INSTAGRAM.COM/x") {
		t.Error("MatchesLink should be case-insensitive")
	}
}

func TestSiteFilter(t *testing.T) {
	if got := Instagram.SiteFilter(); got != "site:instagram.com" {
		t.Errorf("SiteFilter() = %q, want site:instagram.com", got)
	}
}

func TestIsFanPage(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		snippet string
		want    bool
	}{
		{"official", "Joe's Pizza (@joespizza)", "Best pizza in Austin", false},
		{"fan in title", "Joe's Pizza Fan Club", "", true},
		{"fanpage in snippet", "Joe's Pizza", "the biggest fanpage for joes", true},
		{"unofficial", "Unofficial Joe's Pizza", "", true},
		{"tribute", "", "A tribute to the best pizza", true},
		{"case insensitive", "JOES PIZZA FANS", "", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFanPage(tt.title, tt.snippet); got != tt.want {
				t.Errorf("IsFanPage(%q, %q) = %v, want %v", tt.title, tt.snippet, got, tt.want)
			}
		})
	}
}
