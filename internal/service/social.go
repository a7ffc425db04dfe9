package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/models"
)

const stateTTL = 5 * time.Minute

// SocialAuthService runs the code-for-token exchange against Google, Naver
// and Kakao and signs the resulting identity in as a local user. The state
// nonce lives in Redis between the redirect and the callback.
type SocialAuthService struct {
	auth   *AuthService
	redis  *redis.Client
	client *http.Client
	cfg    *config.Config
}

func NewSocialAuthService(auth *AuthService, redisClient *redis.Client, cfg *config.Config) *SocialAuthService {
	return &SocialAuthService{
		auth:   auth,
		redis:  redisClient,
		client: &http.Client{Timeout: 10 * time.Second},
		cfg:    cfg,
	}
}

type socialProfile struct {
	ID    string
	Email string
	Name  string
}

type provider struct {
	marker       models.SocialProvider
	authURL      string
	tokenURL     string
	userInfoURL  string
	scope        string
	parseProfile func([]byte) (socialProfile, error)
}

func (s *SocialAuthService) providers() map[string]provider {
	return map[string]provider{
		"google": {
			marker:      models.SocialGoogle,
			authURL:     "https://accounts.google.com/o/oauth2/v2/auth",
			tokenURL:    "https://oauth2.googleapis.com/token",
			userInfoURL: "https://www.googleapis.com/oauth2/v1/userinfo",
			scope:       "https://www.googleapis.com/auth/userinfo.email https://www.googleapis.com/auth/userinfo.profile",
			parseProfile: func(body []byte) (socialProfile, error) {
				var p struct {
					ID    string `json:"id"`
					Email string `json:"email"`
					Name  string `json:"name"`
				}
				if err := json.Unmarshal(body, &p); err != nil {
					return socialProfile{}, err
				}
				return socialProfile{ID: p.ID, Email: p.Email, Name: p.Name}, nil
			},
		},
		"naver": {
			marker:      models.SocialNaver,
			authURL:     "https://nid.naver.com/oauth2.0/authorize",
			tokenURL:    "https://nid.naver.com/oauth2.0/token",
			userInfoURL: "https://openapi.naver.com/v1/nid/me",
			parseProfile: func(body []byte) (socialProfile, error) {
				var p struct {
					Response struct {
						ID    string `json:"id"`
						Email string `json:"email"`
						Name  string `json:"name"`
					} `json:"response"`
				}
				if err := json.Unmarshal(body, &p); err != nil {
					return socialProfile{}, err
				}
				return socialProfile{ID: p.Response.ID, Email: p.Response.Email, Name: p.Response.Name}, nil
			},
		},
		"kakao": {
			marker:      models.SocialKakao,
			authURL:     "https://kauth.kakao.com/oauth/authorize",
			tokenURL:    "https://kauth.kakao.com/oauth/token",
			userInfoURL: "https://kapi.kakao.com/v2/user/me",
			parseProfile: func(body []byte) (socialProfile, error) {
				var p struct {
					ID      int64 `json:"id"`
					Account struct {
						Email   string `json:"email"`
						Profile struct {
							Nickname string `json:"nickname"`
						} `json:"profile"`
					} `json:"kakao_account"`
				}
				if err := json.Unmarshal(body, &p); err != nil {
					return socialProfile{}, err
				}
				return socialProfile{
					ID:    fmt.Sprintf("%d", p.ID),
					Email: p.Account.Email,
					Name:  p.Account.Profile.Nickname,
				}, nil
			},
		},
	}
}

func (s *SocialAuthService) credentials(name string) (clientID, clientSecret, redirectURI string) {
	switch name {
	case "google":
		return s.cfg.GoogleClientID, s.cfg.GoogleClientSecret, s.cfg.GoogleRedirectURI
	case "naver":
		return s.cfg.NaverClientID, s.cfg.NaverClientSecret, s.cfg.NaverRedirectURI
	case "kakao":
		return s.cfg.KakaoClientID, s.cfg.KakaoClientSecret, s.cfg.KakaoRedirectURI
	}
	return "", "", ""
}

// AuthURL builds the provider's consent URL and parks a state nonce in Redis.
func (s *SocialAuthService) AuthURL(ctx context.Context, name string) (string, error) {
	p, ok := s.providers()[name]
	if !ok {
		return "", ErrUnauthorized
	}
	clientID, _, redirectURI := s.credentials(name)

	state := uuid.NewString()
	if err := s.redis.Set(ctx, stateKey(name, state), "valid", stateTTL).Err(); err != nil {
		return "", ErrExternal.Wrap(err)
	}

	query := url.Values{
		"response_type": {"code"},
		"client_id":     {clientID},
		"redirect_uri":  {redirectURI},
		"state":         {state},
	}
	if p.scope != "" {
		query.Set("scope", p.scope)
	}
	return p.authURL + "?" + query.Encode(), nil
}

// Callback finishes the OAuth dance: state check, code-for-token exchange,
// profile fetch, then find-or-create of the local account.
func (s *SocialAuthService) Callback(ctx context.Context, name, code, state string) (string, error) {
	p, ok := s.providers()[name]
	if !ok {
		return "", ErrUnauthorized
	}
	if err := s.consumeState(ctx, name, state); err != nil {
		return "", err
	}

	accessToken, err := s.exchangeCode(ctx, p, name, code, state)
	if err != nil {
		return "", err
	}

	profile, err := s.fetchProfile(ctx, p, accessToken)
	if err != nil {
		return "", err
	}
	if profile.Email == "" || profile.ID == "" {
		return "", ErrExternal.Wrap(fmt.Errorf("%s profile missing email or id", name))
	}

	user, err := s.findOrCreate(ctx, p.marker, name, profile)
	if err != nil {
		return "", err
	}
	return s.auth.GenerateToken(user.ID)
}

func (s *SocialAuthService) consumeState(ctx context.Context, name, state string) error {
	key := stateKey(name, state)
	val, err := s.redis.GetDel(ctx, key).Result()
	if err == redis.Nil || val == "" {
		return ErrUnauthorized.Wrap(fmt.Errorf("unknown oauth state"))
	}
	if err != nil {
		return ErrExternal.Wrap(err)
	}
	return nil
}

func (s *SocialAuthService) exchangeCode(ctx context.Context, p provider, name, code, state string) (string, error) {
	clientID, clientSecret, redirectURI := s.credentials(name)
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"redirect_uri":  {redirectURI},
		"state":         {state},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", ErrUnexpected.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", ErrExternal.Wrap(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", ErrExternal.Wrap(fmt.Errorf("%s token endpoint returned %d", name, resp.StatusCode))
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", ErrExternal.Wrap(err)
	}
	if token.AccessToken == "" {
		return "", ErrExternal.Wrap(fmt.Errorf("%s token response missing access_token", name))
	}
	return token.AccessToken, nil
}

func (s *SocialAuthService) fetchProfile(ctx context.Context, p provider, accessToken string) (socialProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return socialProfile{}, ErrUnexpected.Wrap(err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return socialProfile{}, ErrExternal.Wrap(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return socialProfile{}, ErrExternal.Wrap(fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode))
	}

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return socialProfile{}, ErrExternal.Wrap(err)
	}
	profile, err := p.parseProfile(body)
	if err != nil {
		return socialProfile{}, ErrExternal.Wrap(err)
	}
	return profile, nil
}

func (s *SocialAuthService) findOrCreate(ctx context.Context, marker models.SocialProvider, name string, profile socialProfile) (*models.User, error) {
	var user models.User
	err := s.auth.db.WithContext(ctx).Where("email = ?", profile.Email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDatabase.Wrap(err)
	}

	// First social login: create an account with a random local password.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrUnexpected.Wrap(err)
	}
	user = models.User{
		Email:        profile.Email,
		PasswordHash: string(hash),
		Name:         profile.Name,
		Nickname:     fmt.Sprintf("%s_%s", name, profile.ID),
		Birth:        time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		SocialAuth:   marker,
	}
	if err := s.auth.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, ErrDatabase.Wrap(err)
	}
	return &user, nil
}

func stateKey(provider, state string) string {
	return fmt.Sprintf("%s_state:%s", provider, state)
}
