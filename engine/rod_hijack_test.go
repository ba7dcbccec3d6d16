package engine

import (
	"testing"

	"github.com/go-rod/rod/lib/proto"
)

func TestShouldBlock(t *testing.T) {
	tests := []struct {
		name         string
		resourceType proto.NetworkResourceType
		url          string
		want         bool
	}{
		{"lookup document", proto.NetworkResourceTypeDocument, "https://www.vindecoderz.com/EN/check-lookup/ABC", false},
		{"challenge script", proto.NetworkResourceTypeScript, "https://www.vindecoderz.com/cdn-cgi/challenge-platform/h/b/orchestrate", false},
		{"stylesheet", proto.NetworkResourceTypeStylesheet, "https://www.vindecoderz.com/css/site.css", false},
		{"image", proto.NetworkResourceTypeImage, "https://www.vindecoderz.com/img/logo.png", true},
		{"font", proto.NetworkResourceTypeFont, "https://fonts.gstatic.com/s/roboto.woff2", true},
		{"tracker subdomain", proto.NetworkResourceTypeScript, "https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js", true},
		{"tracker apex", proto.NetworkResourceTypeXHR, "https://google-analytics.com/collect", true},
		{"lookalike host", proto.NetworkResourceTypeScript, "https://notdoubleclick.net/x.js", false},
		{"bad url", proto.NetworkResourceTypeScript, "://", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldBlock(tt.resourceType, tt.url); got != tt.want {
				t.Errorf("shouldBlock(%s, %q) = %v, want %v", tt.resourceType, tt.url, got, tt.want)
			}
		})
	}
}
