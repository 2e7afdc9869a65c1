// Package internal provides shared utilities for server subpackages.
package internal

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/umputun/portfolio/app/enum"
	"github.com/umputun/portfolio/app/theme"
)

// VisitorCookie is the cookie carrying the signed visitor id.
const VisitorCookie = "portfolio-visitor"

// SchemeCookie caches the last color scheme reported by the browser for the session.
const SchemeCookie = "portfolio-scheme"

// SchemeHintHeader is the client hint carrying the OS color scheme.
const SchemeHintHeader = "Sec-CH-Prefers-Color-Scheme"

const visitorTTL = 365 * 24 * time.Hour

// Visitors issues and verifies signed visitor ids.
// Ids are random uuids, signed with a keyed BLAKE2b MAC so clients cannot pick another visitor's id.
type Visitors struct {
	key        []byte
	cookiePath string
}

// NewVisitors makes visitor signer. The secret is hashed into the MAC key, any length is accepted.
func NewVisitors(secret, cookiePath string) *Visitors {
	key := blake2b.Sum256([]byte(secret))
	if cookiePath == "" {
		cookiePath = "/"
	}
	return &Visitors{key: key[:], cookiePath: cookiePath}
}

// ID returns the visitor id from a valid cookie, or mints a new one and sets the cookie.
func (v *Visitors) ID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(VisitorCookie); err == nil {
		if id, ok := v.Verify(c.Value); ok {
			return id
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    v.Sign(id),
		Path:     v.cookiePath,
		MaxAge:   int(visitorTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Sign returns "id.mac".
func (v *Visitors) Sign(id string) string {
	return id + "." + base64.RawURLEncoding.EncodeToString(v.mac(id))
}

// Verify checks a signed value and returns the id it carries.
func (v *Visitors) Verify(signed string) (string, bool) {
	id, sig, ok := strings.Cut(signed, ".")
	if !ok || id == "" {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}
	if subtle.ConstantTimeCompare(got, v.mac(id)) != 1 {
		return "", false
	}
	return id, true
}

func (v *Visitors) mac(id string) []byte {
	h, err := blake2b.New256(v.key)
	if err != nil {
		// key is always 32 bytes, New256 fails only for keys over 64
		panic(err)
	}
	h.Write([]byte(id)) //nolint:errcheck // hash writes never fail
	return h.Sum(nil)
}

// Scheme returns the color scheme source for the request. The client hint header wins,
// then the scheme cookie set by the last browser report. Neither means unknown.
func Scheme(r *http.Request) *theme.StaticScheme {
	if s := theme.ParseClientHint(r.Header.Get(SchemeHintHeader)); s.Known() {
		return s
	}
	if c, err := r.Cookie(SchemeCookie); err == nil {
		return theme.ParseClientHint(c.Value)
	}
	return &theme.StaticScheme{}
}

// SetSchemeCookie remembers the reported scheme for the browser session.
func SetSchemeCookie(w http.ResponseWriter, cookiePath string, dark bool) {
	if cookiePath == "" {
		cookiePath = "/"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SchemeCookie,
		Value:    enum.AppearanceOf(dark).String(),
		Path:     cookiePath,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
