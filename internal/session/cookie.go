package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid session cookie")

// CookieStore keeps the session in one HMAC-signed cookie.
// value format: base64(json).base64(hmac)
type CookieStore struct {
	Secret     []byte
	CookieName string
	Secure     bool
	TTL        time.Duration
}

func NewCookieStore(secret []byte, name string, secure bool, ttl time.Duration) *CookieStore {
	return &CookieStore{Secret: secret, CookieName: name, Secure: secure, TTL: ttl}
}

func (st *CookieStore) Get(c *gin.Context) (Session, bool) {
	v, err := c.Cookie(st.CookieName)
	if err != nil || v == "" {
		return Session{}, false
	}
	s, err := st.decode(v)
	if err != nil {
		// 签名失效或格式损坏：直接清掉，避免反复尝试
		st.Clear(c)
		return Session{}, false
	}
	return s, true
}

func (st *CookieStore) Set(c *gin.Context, s Session) {
	val, err := st.encode(s)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(st.CookieName, val, int(st.TTL.Seconds()), "/", "", st.Secure, true)
}

func (st *CookieStore) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(st.CookieName, "", -1, "/", "", st.Secure, true)
}

func (st *CookieStore) encode(s Session) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(st.Secret, payload), nil
}

func (st *CookieStore) decode(v string) (Session, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return Session{}, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(st.Secret, payload, sig) {
		return Session{}, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Session{}, ErrInvalid
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, ErrInvalid
	}
	if s.Token == "" {
		return Session{}, ErrInvalid
	}
	return s, nil
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
