package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/viant/afs"
)

// FileJar is an http.CookieJar mirrored to a JSON document at an afs URL, so
// separate processes talking to the same server share its session.
type FileJar struct {
	mux     sync.Mutex
	jar     *cookiejar.Jar
	fs      afs.Service
	URL     string
	cookies map[string]*sessionCookie
}

type sessionCookie struct {
	Origin  string       `json:"origin"`
	Cookie  *http.Cookie `json:"cookie"`
	Expires time.Time    `json:"expires,omitempty"`
}

func (s *sessionCookie) live(now time.Time) bool {
	return s.Expires.IsZero() || now.Before(s.Expires)
}

// Cookies returns cookies to send to u.
func (j *FileJar) Cookies(u *url.URL) []*http.Cookie {
	j.mux.Lock()
	defer j.mux.Unlock()
	return j.jar.Cookies(u)
}

// SetCookies stores cookies received from u and flushes the session document.
func (j *FileJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mux.Lock()
	defer j.mux.Unlock()
	j.jar.SetCookies(u, cookies)
	origin := u.Scheme + "://" + u.Host
	now := time.Now()
	for _, cookie := range cookies {
		entry := &sessionCookie{Origin: origin, Cookie: cookie, Expires: cookie.Expires}
		switch {
		case cookie.MaxAge > 0:
			entry.Expires = now.Add(time.Duration(cookie.MaxAge) * time.Second)
		case cookie.MaxAge < 0:
			entry.Expires = now
		}
		key := origin + "|" + cookie.Path + "|" + cookie.Name
		if !entry.live(now) {
			delete(j.cookies, key)
			continue
		}
		j.cookies[key] = entry
	}
	_ = j.flush(context.Background())
}

func (j *FileJar) flush(ctx context.Context) error {
	entries := make([]*sessionCookie, 0, len(j.cookies))
	for _, entry := range j.cookies {
		entries = append(entries, entry)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return j.fs.Upload(ctx, j.URL, 0o600, bytes.NewReader(data))
}

func (j *FileJar) restore(ctx context.Context) error {
	if ok, _ := j.fs.Exists(ctx, j.URL); !ok {
		return nil
	}
	data, err := j.fs.DownloadWithURL(ctx, j.URL)
	if err != nil {
		return err
	}
	var entries []*sessionCookie
	if err = json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("invalid cookie session %v: %w", j.URL, err)
	}
	now := time.Now()
	for _, entry := range entries {
		if entry.Cookie == nil || !entry.live(now) {
			continue
		}
		origin, err := url.Parse(entry.Origin)
		if err != nil {
			continue
		}
		cookie := *entry.Cookie
		cookie.MaxAge = 0
		cookie.Expires = entry.Expires
		j.jar.SetCookies(origin, []*http.Cookie{&cookie})
		j.cookies[entry.Origin+"|"+cookie.Path+"|"+cookie.Name] = entry
	}
	return nil
}

// NewFileJar creates a cookie jar restored from and persisted to URL.
func NewFileJar(URL string) (*FileJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	ret := &FileJar{jar: jar, fs: afs.New(), URL: URL, cookies: map[string]*sessionCookie{}}
	if err = ret.restore(context.Background()); err != nil {
		return nil, err
	}
	return ret, nil
}
