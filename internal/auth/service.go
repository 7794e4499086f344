package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/crewhq/crewhq/internal/database"
	"github.com/crewhq/crewhq/internal/model"
	"github.com/crewhq/crewhq/internal/upload"
)

var (
	ErrBadCredentials = errors.New("invalid username or password")
	ErrUserExists     = errors.New("username is taken")
)

// Service covers brawler accounts: registration, login, profile edits.
type Service struct {
	dbm      *database.DatabaseManager
	issuer   *TokenIssuer
	uploader upload.Uploader
	logger   *slog.Logger
}

func NewService(dbm *database.DatabaseManager, issuer *TokenIssuer, uploader upload.Uploader) *Service {
	return &Service{
		dbm:      dbm,
		issuer:   issuer,
		uploader: uploader,
		logger:   slog.With("logger", "auth"),
	}
}

func (s *Service) passport(b *model.Brawler) (*Passport, error) {
	token, err := s.issuer.Issue(b.ID)

	if err != nil {
		return nil, err
	}

	return &Passport{
		BrawlerID:   b.ID,
		DisplayName: b.DisplayName,
		AvatarURL:   b.AvatarURL,
		Bio:         b.Bio,
		Token:       token,
	}, nil
}

func (s *Service) Register(username, password, displayName string) (*Passport, error) {
	if username == "" || password == "" {
		return nil, ErrBadCredentials
	}

	if s.dbm.BrawlerQuery().Username(username).One() != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	b := &model.Brawler{
		Username:    username,
		Password:    string(hash),
		DisplayName: displayName,
	}

	if b.DisplayName == "" {
		b.DisplayName = username
	}

	if err := s.dbm.Create(b); err != nil {
		return nil, err
	}

	return s.passport(b)
}

func (s *Service) Login(username, password string) (*Passport, error) {
	b := s.dbm.BrawlerQuery().Username(username).One()

	if b == nil {
		return nil, ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(b.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	return s.passport(b)
}

func (s *Service) GetBrawler(id uint) *model.Brawler {
	return s.dbm.BrawlerQuery().Id(id).One()
}

type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
}

func (s *Service) UpdateProfile(brawlerID uint, p *ProfileUpdate) error {
	updates := make(map[string]any)

	if p.DisplayName != nil {
		updates["display_name"] = *p.DisplayName
	}

	if p.Bio != nil {
		updates["bio"] = *p.Bio
	}

	if len(updates) == 0 {
		return nil
	}

	return s.dbm.BrawlerQuery().Id(brawlerID).Update(updates)
}

// UploadAvatar stores the image and saves its URL on the profile.
func (s *Service) UploadAvatar(ctx context.Context, brawlerID uint, name string, data []byte) (string, error) {
	url, err := s.uploader.Upload(ctx, &upload.Request{
		Folder: "avatars",
		Name:   fmt.Sprintf("%d_%s", brawlerID, name),
		Data:   data,
	})

	if err != nil {
		return "", err
	}

	if err := s.dbm.BrawlerQuery().Id(brawlerID).Update(map[string]any{"avatar_url": url}); err != nil {
		return "", err
	}

	return url, nil
}
