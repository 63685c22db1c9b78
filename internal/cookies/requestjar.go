package cookies

import (
	"net/http"
	"time"
)

// RequestJar is a Store backed by the cookies of a single incoming HTTP
// request. Reads see the values the browser sent; writes and deletes are
// recorded and replayed to the browser as Set-Cookie headers via Apply. The
// jar is request-scoped and not safe for use across requests.
type RequestJar struct {
	values  map[string]string
	pending []*http.Cookie
}

// NewRequestJar builds a jar from the cookies present on req.
func NewRequestJar(req *http.Request) *RequestJar {
	j := &RequestJar{
		values: make(map[string]string),
	}
	for _, c := range req.Cookies() {
		j.values[c.Name] = c.Value
	}
	return j
}

func (j *RequestJar) Get(name string) (string, bool) {
	value, ok := j.values[name]
	return value, ok
}

func (j *RequestJar) Set(name string, value string, expiresAt time.Time) {
	j.values[name] = value
	j.pending = append(j.pending, makeCookie(name, value, expiresAt))
}

func (j *RequestJar) Delete(name string) {
	delete(j.values, name)
	j.pending = append(j.pending, expiredCookie(name))
}

// Apply emits all recorded mutations as Set-Cookie headers. It must be called
// before the response status and body are written.
func (j *RequestJar) Apply(res http.ResponseWriter) {
	for _, c := range j.pending {
		http.SetCookie(res, c)
	}
}

// makeCookie renders a cookie with the same attributes the original web
// client used: root path, SameSite=None, Secure, and an optional absolute
// expiry.
func makeCookie(name string, value string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	}
}

func expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	}
}

var _ Store = (*RequestJar)(nil)
