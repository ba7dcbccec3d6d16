package engine

import (
	"net/url"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Resource types the lookup page renders fine without. Scripts and
// stylesheets stay: the challenge page needs both.
var blockedResourceTypes = map[proto.NetworkResourceType]struct{}{
	proto.NetworkResourceTypeImage: {},
	proto.NetworkResourceTypeFont:  {},
	proto.NetworkResourceTypeMedia: {},
}

// trackerDomains are ad and analytics hosts the lookup page embeds.
var trackerDomains = map[string]struct{}{
	"doubleclick.net":       {},
	"googlesyndication.com": {},
	"googleadservices.com":  {},
	"google-analytics.com":  {},
	"googletagmanager.com":  {},
	"googletagservices.com": {},
	"adservice.google.com":  {},
	"facebook.net":          {},
	"amazon-adsystem.com":   {},
	"adnxs.com":             {},
	"criteo.com":            {},
	"criteo.net":            {},
	"pubmatic.com":          {},
	"rubiconproject.com":    {},
	"scorecardresearch.com": {},
	"quantserve.com":        {},
	"hotjar.com":            {},
	"taboola.com":           {},
	"outbrain.com":          {},
	"consensu.org":          {},
}

// isTrackerHost reports whether host or one of its parent domains is a
// known tracker.
func isTrackerHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for host != "" {
		if _, ok := trackerDomains[host]; ok {
			return true
		}
		idx := strings.IndexByte(host, '.')
		if idx < 0 {
			return false
		}
		host = host[idx+1:]
	}
	return false
}

// shouldBlock decides whether a request from the lookup tab is aborted.
func shouldBlock(resourceType proto.NetworkResourceType, rawURL string) bool {
	if _, ok := blockedResourceTypes[resourceType]; ok {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return isTrackerHost(u.Hostname())
}

// blockResources installs a request interceptor on page. The caller stops
// the returned router when the page is done.
func blockResources(page *rod.Page) *rod.HijackRouter {
	router := page.HijackRequests()

	_ = router.Add("*", "", func(h *rod.Hijack) {
		if shouldBlock(h.Request.Type(), h.Request.URL().String()) {
			h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
			return
		}
		h.ContinueRequest(&proto.FetchContinueRequest{})
	})

	// Run blocks until Stop.
	go router.Run()

	return router
}
