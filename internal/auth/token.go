package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blues/tfs/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// ErrInvalidToken token无效或已过期
var ErrInvalidToken = errors.New("无效的访问令牌")

// TokenClaims 访问令牌声明
type TokenClaims struct {
	UserId int64  `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service 鉴权服务，负责解析bearer token并关联到用户记录
type Service struct {
	db        *gorm.DB
	jwtSecret []byte
	issuer    string
}

// NewService 创建鉴权服务
func NewService(db *gorm.DB, jwtSecret, issuer string) *Service {
	return &Service{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		issuer:    issuer,
	}
}

// ValidateToken 校验token并返回对应的用户
func (s *Service) ValidateToken(tokenString string) (*model.UserModel, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 校验签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, ErrInvalidToken
	}

	var user model.UserModel
	if err := s.db.First(&user, claims.UserId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	return &user, nil
}

// IssueToken 为用户签发token，主要供测试和运维脚本使用
func (s *Service) IssueToken(user *model.UserModel, ttl time.Duration) (string, error) {
	claims := TokenClaims{
		UserId: user.Id,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
