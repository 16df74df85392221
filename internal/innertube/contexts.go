package innertube

// ClientContext is an identity profile sent with every Innertube call.
// Profiles are immutable and selected per call; which one is used
// affects which content and restrictions apply.
type ClientContext struct {
	// ID is the registry alias used for configuration and diagnostics
	// (e.g. "web"), distinct from the wire clientName ("WEB").
	ID        string
	Name      string
	Version   string
	UserAgent string
	// Screen marks the embedded-player profile; it unlocks some
	// verification-gated content.
	Screen string
}

// IsEmbedded reports whether the profile presents as the embedded
// player.
func (c ClientContext) IsEmbedded() bool { return c.Screen == "EMBED" }

var (
	// WebContext is the primary desktop identity.
	WebContext = ClientContext{
		ID:        "web",
		Name:      "WEB",
		Version:   "2.20260114.08.00",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}

	// WebEmbeddedContext is the restricted-fallback identity used to
	// unlock embed-resolvable gates.
	WebEmbeddedContext = ClientContext{
		ID:        "web_embedded",
		Name:      "WEB_EMBEDDED_PLAYER",
		Version:   "1.20260115.01.00",
		UserAgent: WebContext.UserAgent,
		Screen:    "EMBED",
	}

	// AndroidContext mimics the official Android app.
	AndroidContext = ClientContext{
		ID:        "android",
		Name:      "ANDROID",
		Version:   "21.02.35",
		UserAgent: "com.google.android.youtube/21.02.35 (Linux; U; Android 11) gzip",
	}

	// TVContext is the Smart TV identity.
	TVContext = ClientContext{
		ID:        "tv",
		Name:      "TVHTML5",
		Version:   "7.20260114.12.00",
		UserAgent: "Mozilla/5.0 (ChromiumStylePlatform) Cobalt/25.lts.30.1034943-gold (unlike Gecko)",
	}
)

// FallbackFor returns the alternate context to retry with when a call
// under ctx hits an embed-resolvable gate. There is exactly one step:
// the embedded profile itself has no further fallback.
func FallbackFor(ctx ClientContext) (ClientContext, bool) {
	if ctx.IsEmbedded() {
		return ClientContext{}, false
	}
	return WebEmbeddedContext, true
}
