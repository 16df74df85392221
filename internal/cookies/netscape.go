// Package cookies loads browser-exported cookie files so authenticated
// sessions can be attached to a client.
package cookies

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ParseNetscape reads a cookies.txt export. Lines are tab separated:
// domain, host-only flag, path, secure, expiry, name, value. Comment
// and blank lines are skipped; #HttpOnly_ domain prefixes are honored.
func ParseNetscape(r io.Reader) ([]*http.Cookie, error) {
	var out []*http.Cookie
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		httpOnly := false
		if strings.HasPrefix(line, "#HttpOnly_") {
			httpOnly = true
			line = strings.TrimPrefix(line, "#HttpOnly_")
		} else if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			continue
		}

		expiry, _ := strconv.ParseInt(fields[4], 10, 64)
		cookie := &http.Cookie{
			Domain:   strings.TrimPrefix(fields[0], "."),
			Path:     fields[2],
			Secure:   strings.EqualFold(fields[3], "TRUE"),
			Name:     fields[5],
			Value:    fields[6],
			HttpOnly: httpOnly,
		}
		if expiry > 0 {
			cookie.Expires = time.Unix(expiry, 0)
		}
		out = append(out, cookie)
	}

	return out, scanner.Err()
}

// Jar builds a cookie jar holding the cookies under their respective
// domains. Host-only versus domain cookies are not distinguished; the
// jar applies its usual matching rules.
func Jar(cookies []*http.Cookie) (http.CookieJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	byDomain := make(map[string][]*http.Cookie)
	for _, c := range cookies {
		byDomain[c.Domain] = append(byDomain[c.Domain], c)
	}
	for domain, group := range byDomain {
		u, err := url.Parse("https://" + domain + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid cookie domain %q: %w", domain, err)
		}
		jar.SetCookies(u, group)
	}
	return jar, nil
}
