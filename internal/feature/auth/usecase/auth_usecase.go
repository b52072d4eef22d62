package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// sessionTokenBytes はセッショントークンの乱数長（hex化前）です。
	sessionTokenBytes = 32

	// maxSessionsPerUser は1ユーザーが同時に保持できるセッション数の上限です。
	// 超過した場合は最も古いセッションを破棄します。
	maxSessionsPerUser = 5
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じログインIDのユーザーが既に存在する場合、ErrUserIDAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUserID は指定されたログインIDに一致するユーザーを取得します。
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// SessionRepository はセッションの永続化層を抽象化します。
type SessionRepository interface {
	// Create は新しいセッションをストレージに永続化します。
	Create(ctx context.Context, session *entity.Session) error

	// FindByID はセッショントークンでセッションを取得します。
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke はRevokedAtを設定してセッションを失効させます。
	Revoke(ctx context.Context, id string) error

	// CountByUserID はユーザーの有効なセッション数を返します。
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// DeleteOldestByUserID はユーザーの最も古いセッションを削除します。
	DeleteOldestByUserID(ctx context.Context, userID uint) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーとセッションの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, sessionID string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
	sessionTTL   time.Duration
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator, sessionTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
		sessionTTL:   sessionTTL,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// ダッシュボードの運用者アカウントは起動時のシードや運用コマンドから登録されます。
func (u *authUsecase) Signup(ctx context.Context, userID, password string) error {
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{UserID: userID, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時にセッションを作成して署名済みJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, userID, password, userAgent, ipAddress string) (string, error) {
	user, err := u.users.FindByUserID(ctx, userID)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	// セッション数の上限を超える場合は最も古いものを破棄
	if count, err := u.sessions.CountByUserID(ctx, user.ID); err == nil && count >= maxSessionsPerUser {
		if err := u.sessions.DeleteOldestByUserID(ctx, user.ID); err != nil {
			return "", fmt.Errorf("failed to evict oldest session: %w", err)
		}
	}

	session, err := u.newSession(user.ID, userAgent, ipAddress)
	if err != nil {
		return "", err
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, session.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// Logout はセッションを失効させます。
// セッションが既に存在しない場合は成功扱いにします（ログアウトは冪等）。
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Revoke(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// newSession は暗号学的乱数のトークンを持つ新しいセッションを組み立てます。
func (u *authUsecase) newSession(userID uint, userAgent, ipAddress string) (*entity.Session, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	return &entity.Session{
		ID:        hex.EncodeToString(buf),
		UserID:    userID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}, nil
}
