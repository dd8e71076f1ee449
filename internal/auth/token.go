package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT 表示 token 不是可解析的 JWT（不透明 token 仍可正常使用）。
var ErrNotJWT = errors.New("token is not a JWT")

// Claims 是后端签发的访问 token 中 CLI 关心的部分。
type Claims struct {
	UserID string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// TokenInfo 描述本地保存的 token，仅用于展示，不做签名校验。
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that is not after now.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !i.ExpiresAt.After(now)
}

// Inspect 解析 token 的 claims；签名由服务端校验，这里只读不验。
func Inspect(token string) (TokenInfo, error) {
	token = strings.TrimSpace(token)
	if strings.Count(token, ".") != 2 {
		return TokenInfo{}, ErrNotJWT
	}
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, errors.Join(ErrNotJWT, err)
	}
	info := TokenInfo{Subject: claims.UserID}
	if info.Subject == "" {
		info.Subject = claims.Subject
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
